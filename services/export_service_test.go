package services

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"IsletmeBulucu/models"
	"IsletmeBulucu/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type recordingUploader struct {
	key         string
	data        []byte
	contentType string
}

func (u *recordingUploader) Upload(_ context.Context, key string, data []byte, contentType string) (string, error) {
	u.key, u.data, u.contentType = key, data, contentType
	return "https://exports.example.com/" + key, nil
}

func exportFixture() []models.Business {
	phone := "+90 216 000 00 00"
	rating := 4.5
	return []models.Business{
		{
			BusinessName:   "Moda Kafe",
			MainCategory:   "Yeme & İçme",
			SubCategory:    "Kafe",
			Phone:          &phone,
			District:       "Kadıköy",
			Neighborhood:   "Caferağa (Moda)",
			Address:        "Moda Cd.\tNo: 1\nKadıköy",
			GoogleRating:   &rating,
			GoogleMapsLink: "https://maps.google.com/?cid=1",
		},
		{BusinessName: "Fırın Evi", District: "Kadıköy"},
	}
}

func TestExportService_ToXLSX(t *testing.T) {
	svc := NewExportService(nil)

	data, err := svc.ToXLSX(exportFixture())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ExportSheetName}, f.GetSheetList())

	rows, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "Moda Kafe", rows[1][0])
	assert.Equal(t, "+90 216 000 00 00", rows[1][3])
	assert.Equal(t, "4.5", rows[1][7])
	assert.Equal(t, "Fırın Evi", rows[2][0])

	cellType, err := f.GetCellType(ExportSheetName, "H2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
}

func TestExportService_ToClipboardText(t *testing.T) {
	svc := NewExportService(nil)

	text, err := svc.ToClipboardText(exportFixture())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(exportHeader, "\t"), lines[0])

	cols := strings.Split(lines[1], "\t")
	require.Len(t, cols, len(exportHeader))
	assert.Equal(t, "Moda Cd. No: 1 Kadıköy", cols[6])
	assert.Equal(t, "4.5", cols[7])

	cols = strings.Split(lines[2], "\t")
	assert.Equal(t, "", cols[3])
	assert.Equal(t, "", cols[7])
}

func TestExportService_EmptyInput(t *testing.T) {
	svc := NewExportService(nil)

	_, err := svc.ToXLSX(nil)
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))

	_, err = svc.ToClipboardText([]models.Business{})
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))
}

func TestExportService_UploadXLSX(t *testing.T) {
	_, err := NewExportService(nil).UploadXLSX(context.Background(), exportFixture())
	assert.Equal(t, http.StatusBadRequest, utils.StatusOf(err))

	uploader := &recordingUploader{}
	url, err := NewExportService(uploader).UploadXLSX(context.Background(), exportFixture())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uploader.key, "exports/"))
	assert.True(t, strings.HasSuffix(uploader.key, ExportFileName))
	assert.Equal(t, XLSXContentType, uploader.contentType)
	assert.NotEmpty(t, uploader.data)
	assert.Equal(t, "https://exports.example.com/"+uploader.key, url)
}
