package gosuslugi

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/oshokin/gosuslugi-grabber/internal/config"
)

// Test GUIDs.
const (
	testOrganizationGUID   = "3f2a9b4e-1c7d-4e8a-9b21-5d6c7e8f9a01"
	testHomeManagementGUID = "8c1d2e3f-4a5b-4c6d-8e7f-9a0b1c2d3e4f"
	testHouseCode          = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
	testINN                = "7701234567"
)

// testServer wraps an httptest server and counts the requests it receives.
type testServer struct {
	*httptest.Server
	requests atomic.Int64
}

func (s *testServer) requestsCount() int64 {
	return s.requests.Load()
}

// newTestServer starts a server that routes every request to handler.
func newTestServer(t *testing.T, handler http.HandlerFunc) *testServer {
	t.Helper()

	server := &testServer{}
	server.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		server.requests.Add(1)
		handler(w, r)
	}))

	t.Cleanup(server.Close)

	return server
}

// newTestClient creates a client pointed at the test server.
func newTestClient(t *testing.T, server *testServer) *ClientImpl {
	t.Helper()

	cfg := config.Default()
	cfg.BaseURL = server.URL + "/"
	cfg.OrganizationsPerPage = 11
	cfg.HomeManagementsPerPage = 2
	require.NoError(t, config.ValidateConfig(cfg))

	client, err := NewClient(cfg)
	require.NoError(t, err)

	impl, ok := client.(*ClientImpl)
	require.True(t, ok)

	return impl
}

// writeJSON writes value as a JSON response.
func writeJSON(t *testing.T, w http.ResponseWriter, value any) {
	t.Helper()

	w.Header().Set(contentTypeHeader, jsonContentType)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

// licensesHeader is the header row of a license workbook.
var licensesHeader = []any{
	"Номер лицензии", "Дата лицензии", "Статус лицензии", "Дата включения",
	"Номер приказа", "Дата приказа", "Юридический адрес", "UID лицензиата",
	"Дополнительная информация", "Наименование лицензиата", "ИНН", "ОГРН",
	"Адрес МКД", "Код дома", "Дата включения в реестр", "Дата начала управления",
	"Дата окончания управления", "Дата исключения из реестра", "Причина исключения",
	"Сведения по 198", "Размещение информации",
}

// newLicenseCells returns the cells of a license row for a house.
func newLicenseCells(inn, houseCode string) []any {
	return []any{
		" 077-000123 ", "01.02.2015", "Действующая", "01.02.2015",
		"П-15", "30.01.2015", "г. Москва, ул. Тверская, д. 1", "LIC-UID-1",
		"", "ООО \"УК ДОМ\"", inn, "1157746000001",
		"г. Москва, ул. Ленина, д. 5", houseCode, "15.03.2015 10:20:30", "01.04.2015",
		"", "", "",
		"", "Размещена",
	}
}

// buildWorkbook creates an xlsx workbook whose first sheet holds rows starting at A1.
func buildWorkbook(t *testing.T, rows ...[]any) []byte {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	sheet := file.GetSheetName(0)

	for i, row := range rows {
		if row == nil {
			continue
		}

		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)

		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	buffer, err := file.WriteToBuffer()
	require.NoError(t, err)

	return buffer.Bytes()
}

// buildLicensesWorkbook creates a license workbook with a title row, the header and the given data rows.
func buildLicensesWorkbook(t *testing.T, dataRows ...[]any) []byte {
	t.Helper()

	rows := make([][]any, 0, len(dataRows)+2)
	rows = append(rows, []any{"Реестр лицензий"}, licensesHeader)
	rows = append(rows, dataRows...)

	return buildWorkbook(t, rows...)
}

// archiveEntry is a file of a test ZIP archive.
type archiveEntry struct {
	name    string
	content []byte
}

// buildArchive packs entries into a ZIP archive.
func buildArchive(t *testing.T, entries ...archiveEntry) []byte {
	t.Helper()

	var buffer bytes.Buffer

	writer := zip.NewWriter(&buffer)

	for _, entry := range entries {
		file, err := writer.Create(entry.name)
		require.NoError(t, err)

		_, err = file.Write(entry.content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return buffer.Bytes()
}
