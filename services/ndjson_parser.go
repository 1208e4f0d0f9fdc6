package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"IsletmeBulucu/models"
	"IsletmeBulucu/utils"
)

// NDJSONParser turns a streamed model answer into businesses, one JSON
// object per line. It is not safe for concurrent use.
type NDJSONParser struct {
	buf     strings.Builder
	raw     strings.Builder
	emitted int
	skipped int
}

func NewNDJSONParser() *NDJSONParser {
	return &NDJSONParser{}
}

// Feed consumes a chunk of text and returns the businesses of every line it
// completed. The trailing partial line stays buffered.
func (p *NDJSONParser) Feed(chunk string) []models.Business {
	if chunk == "" {
		return nil
	}
	p.raw.WriteString(chunk)
	p.buf.WriteString(chunk)

	pending := p.buf.String()
	last := strings.LastIndexByte(pending, '\n')
	if last < 0 {
		return nil
	}
	complete, rest := pending[:last], pending[last+1:]
	p.buf.Reset()
	p.buf.WriteString(rest)

	var out []models.Business
	for _, line := range strings.Split(complete, "\n") {
		out = append(out, p.parseLine(line)...)
	}
	p.emitted += len(out)
	return out
}

// Flush parses whatever is still buffered. When the whole stream produced no
// line-level records, the full text is decoded as a JSON array or a sequence
// of (possibly pretty printed) objects instead.
func (p *NDJSONParser) Flush() []models.Business {
	rest := p.buf.String()
	p.buf.Reset()
	out := p.parseLine(rest)
	p.emitted += len(out)
	if p.emitted > 0 {
		return out
	}

	fallback, err := decodeDocument(utils.CleanJSONResponse(p.raw.String()))
	if err != nil || len(fallback) == 0 {
		return out
	}
	p.skipped = 0
	p.emitted = len(fallback)
	return fallback
}

// Skipped is the number of lines that could not be turned into a business.
func (p *NDJSONParser) Skipped() int {
	return p.skipped
}

func (p *NDJSONParser) parseLine(line string) []models.Business {
	line = strings.TrimSpace(line)
	switch {
	case line == "", line == "[", line == "]", line == "],", strings.HasPrefix(line, "```"):
		return nil
	}
	line = strings.TrimSuffix(line, ",")

	if strings.HasPrefix(line, "[") {
		businesses, err := decodeArray([]byte(line))
		if err != nil {
			p.skipped++
			return nil
		}
		return businesses
	}
	if !strings.HasPrefix(line, "{") {
		p.skipped++
		return nil
	}

	b, err := decodeBusiness([]byte(line))
	if err != nil {
		p.skipped++
		return nil
	}
	return []models.Business{b}
}

// rawBusiness accepts the loose types models tend to produce: ratings as
// strings with a decimal comma, phones as numbers.
type rawBusiness struct {
	BusinessName   string          `json:"businessName"`
	MainCategory   string          `json:"mainCategory"`
	SubCategory    string          `json:"subCategory"`
	Phone          json.RawMessage `json:"phone"`
	District       string          `json:"district"`
	Neighborhood   string          `json:"neighborhood"`
	Address        string          `json:"address"`
	GoogleRating   json.RawMessage `json:"googleRating"`
	GoogleMapsLink string          `json:"googleMapsLink"`
	GooglePlaceID  json.RawMessage `json:"googlePlaceId"`
	Coordinates    json.RawMessage `json:"coordinates"`
}

var errNoName = errors.New("business has no name")

func decodeBusiness(data []byte) (models.Business, error) {
	var raw rawBusiness
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Business{}, err
	}
	return raw.toBusiness()
}

func (r rawBusiness) toBusiness() (models.Business, error) {
	if strings.TrimSpace(r.BusinessName) == "" {
		return models.Business{}, errNoName
	}
	return models.Business{
		BusinessName:   r.BusinessName,
		MainCategory:   r.MainCategory,
		SubCategory:    r.SubCategory,
		Phone:          looseString(r.Phone),
		District:       r.District,
		Neighborhood:   r.Neighborhood,
		Address:        r.Address,
		GoogleRating:   looseFloat(r.GoogleRating),
		GoogleMapsLink: r.GoogleMapsLink,
		GooglePlaceID:  looseString(r.GooglePlaceID),
		Coordinates:    looseString(r.Coordinates),
	}, nil
}

func decodeArray(data []byte) ([]models.Business, error) {
	var raws []rawBusiness
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	out := make([]models.Business, 0, len(raws))
	for _, r := range raws {
		if b, err := r.toBusiness(); err == nil {
			out = append(out, b)
		}
	}
	return out, nil
}

func decodeDocument(text string) ([]models.Business, error) {
	if text == "" {
		return nil, io.EOF
	}
	if strings.HasPrefix(text, "[") {
		return decodeArray([]byte(text))
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	var out []models.Business
	for {
		var raw rawBusiness
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if b, err := raw.toBusiness(); err == nil {
			out = append(out, b)
		}
	}
}

func looseString(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "n/a") {
		return nil
	}
	return &s
}

func looseFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil || !finite(f) {
		return nil
	}
	return &f
}

// finite reports whether f can be encoded as JSON.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
