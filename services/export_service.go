package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"IsletmeBulucu/models"
	"IsletmeBulucu/utils"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	// MaxExportRows is the largest number of businesses one export accepts.
	MaxExportRows = 10000

	ExportSheetName = "İşletmeler"
	ExportFileName  = "isletme_bulucu_sonuclari.xlsx"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeader = []string{
	"İşletme Adı",
	"Ana Kategori",
	"Alt Kategori",
	"Telefon",
	"İlçe",
	"Mahalle",
	"Adres",
	"Google Puanı",
	"Google Haritalar Linki",
}

// Uploader stores an exported file and returns where it can be fetched.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type ExportService struct {
	Uploader Uploader
}

func NewExportService(uploader Uploader) *ExportService {
	return &ExportService{Uploader: uploader}
}

var (
	errNoExportData   = utils.BadRequest("No data to export")
	errTooManyExports = utils.BadRequest(fmt.Sprintf("At most %d businesses can be exported at once", MaxExportRows))
	cellSanitizer   = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")
)

func exportRow(b models.Business) []string {
	rating := ""
	if b.GoogleRating != nil {
		rating = strconv.FormatFloat(*b.GoogleRating, 'f', 1, 64)
	}
	return []string{
		b.BusinessName,
		b.MainCategory,
		b.SubCategory,
		deref(b.Phone),
		b.District,
		b.Neighborhood,
		b.Address,
		rating,
		b.GoogleMapsLink,
	}
}

// ToXLSX renders businesses as a single-sheet workbook.
func (s *ExportService) ToXLSX(businesses []models.Business) ([]byte, error) {
	if err := checkExportSize(businesses); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, b := range businesses {
		row := make([]interface{}, 0, len(exportHeader))
		for col, v := range exportRow(b) {
			// Ratings stay numeric so spreadsheets can sort them.
			if col == 7 && b.GoogleRating != nil {
				row = append(row, *b.GoogleRating)
				continue
			}
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ToClipboardText renders businesses as tab separated rows with a header, the
// format spreadsheets accept on paste.
func (s *ExportService) ToClipboardText(businesses []models.Business) (string, error) {
	if err := checkExportSize(businesses); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	if err := w.Write(exportHeader); err != nil {
		return "", err
	}
	for _, b := range businesses {
		row := exportRow(b)
		for i := range row {
			row[i] = cellSanitizer.Replace(row[i])
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// UploadXLSX renders and uploads a workbook, returning its URL.
func (s *ExportService) UploadXLSX(ctx context.Context, businesses []models.Business) (string, error) {
	if s.Uploader == nil {
		return "", utils.BadRequest("Export upload is not configured")
	}
	data, err := s.ToXLSX(businesses)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("exports/%s-%s-%s", time.Now().UTC().Format("20060102-150405"), uuid.NewString()[:8], ExportFileName)
	return s.Uploader.Upload(ctx, key, data, XLSXContentType)
}

func checkExportSize(businesses []models.Business) error {
	if len(businesses) == 0 {
		return errNoExportData
	}
	if len(businesses) > MaxExportRows {
		return errTooManyExports
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
