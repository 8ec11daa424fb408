package app

import (
	"bytes"
	"encoding/json"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	mock_gosuslugi "github.com/oshokin/gosuslugi-grabber/internal/client/gosuslugi/mocks"
)

const (
	testOrganizationGUID = "3f2a9b4e-1c7d-4e8a-9b21-5d6c7e8f9a01"
	testHouseCode        = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
	testINN              = "7701234567"
)

// newTestApp creates an App backed by a mock client that prints JSON into the returned buffer.
func newTestApp(t *testing.T) (*App, *mock_gosuslugi.MockClient, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mock_gosuslugi.NewMockClient(ctrl)

	var buffer bytes.Buffer

	return New(client, NewPrinter(&buffer, OutputFormatJSON)), client, &buffer
}

// seqOf returns a sequence of values followed by err when it is not nil.
func seqOf[T any](err error, values ...T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, value := range values {
			if !yield(value, nil) {
				return
			}
		}

		if err != nil {
			var zero T

			yield(zero, err)
		}
	}
}

// decodeDocuments decodes a stream of JSON documents.
func decodeDocuments(t *testing.T, buffer *bytes.Buffer) []map[string]any {
	t.Helper()

	var (
		documents []map[string]any
		decoder   = json.NewDecoder(buffer)
	)

	for decoder.More() {
		var document map[string]any

		require.NoError(t, decoder.Decode(&document))

		documents = append(documents, document)
	}

	return documents
}

// buildLicensesWorkbook creates a license workbook with a header and one row per license status.
func buildLicensesWorkbook(t *testing.T, statuses ...string) []byte {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	sheet := file.GetSheetName(0)

	header := []any{"Номер лицензии", "Дата лицензии", "Статус лицензии"}
	require.NoError(t, file.SetSheetRow(sheet, "A1", &header))

	for i, status := range statuses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)

		row := []any{
			"077-00012" + string(rune('0'+i)), "01.02.2015", status, "", "", "", "", "", "", "",
			testINN, "", "", testHouseCode,
		}
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	buffer, err := file.WriteToBuffer()
	require.NoError(t, err)

	return buffer.Bytes()
}
