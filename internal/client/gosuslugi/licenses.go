package gosuslugi

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/xuri/excelize/v2"

	"github.com/oshokin/gosuslugi-grabber/internal/constants"
	"github.com/oshokin/gosuslugi-grabber/internal/logger"
)

// LicensesPage holds the license workbook of one region.
type LicensesPage struct {
	// RegionCode is the code of the region.
	RegionCode RegionCode
	// RegionName is the name of the region.
	RegionName string
	// FileName is the name of the workbook inside the downloaded archive.
	FileName string
	// source identifies the workbook in decode errors.
	source string
	// workbook is the raw xlsx content.
	workbook []byte
}

// NewLicensesPage wraps a license workbook obtained elsewhere, for example one saved earlier.
func NewLicensesPage(code RegionCode, fileName string, workbook []byte) *LicensesPage {
	return &LicensesPage{
		RegionCode: code,
		RegionName: code.Name(),
		FileName:   fileName,
		source:     fileName,
		workbook:   workbook,
	}
}

// GetLicenses returns a lazy sequence with one licenses page per region code, in the given order.
// All codes are checked against the region reference before anything is requested.
// Pulling a page issues two requests (file UID, then the archive); an error ends the sequence.
// Ranging over the sequence again repeats the requests.
func (c *ClientImpl) GetLicenses(
	ctx context.Context,
	regionCodes []RegionCode,
) (iter.Seq2[*LicensesPage, error], error) {
	if err := validateRegionCodes(regionCodes); err != nil {
		return nil, err
	}

	codes := slices.Clone(regionCodes)

	return func(yield func(*LicensesPage, error) bool) {
		for _, code := range codes {
			page, err := c.getLicensesPage(ctx, code)
			if err != nil {
				yield(nil, fmt.Errorf("licenses of region %s: %w", code, err))

				return
			}

			if !yield(page, nil) {
				return
			}
		}
	}, nil
}

func (c *ClientImpl) getLicensesPage(ctx context.Context, code RegionCode) (*LicensesPage, error) {
	regionName := code.Name()

	uid, err := c.fetchText(ctx, &apiRequest{
		method: http.MethodGet,
		uri:    []string{licensesRegionUIDURI, code.String()},
	})
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "License file UID of region %s (%s): %s", code, regionName, uid)

	query := url.Values{}
	query.Set("context", licensesFileStoreContext)
	query.Set("uids", uid)
	query.Set("zipFileName", regionName+constants.ExtensionZIP)

	route, archive, err := c.fetch(ctx, &apiRequest{
		method: http.MethodGet,
		uri:    []string{licensesDownloadURI},
		query:  query,
	})
	if err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "Downloaded license archive of region %s: %s", code, humanize.Bytes(uint64(len(archive))))

	fileName, workbook, err := extractWorkbook(ctx, archive)
	if err != nil {
		return nil, &DecodeError{URL: route, Err: err}
	}

	return &LicensesPage{
		RegionCode: code,
		RegionName: regionName,
		FileName:   fileName,
		source:     route + "#" + fileName,
		workbook:   workbook,
	}, nil
}

// extractWorkbook returns the name and content of the first xlsx entry of a ZIP archive.
func extractWorkbook(ctx context.Context, archive []byte) (string, []byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return "", nil, fmt.Errorf("failed to open license archive: %w", err)
	}

	var workbookFile *zip.File

	for _, file := range reader.File {
		if !strings.EqualFold(path.Ext(file.Name), constants.ExtensionXLSX) {
			continue
		}

		if workbookFile != nil {
			logger.Warnf(ctx, "License archive has more than one workbook, %s is ignored", file.Name)

			continue
		}

		workbookFile = file
	}

	if workbookFile == nil {
		return "", nil, ErrLicensesWorkbookAbsent
	}

	rc, err := workbookFile.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open %s: %w", workbookFile.Name, err)
	}

	defer rc.Close() //nolint:errcheck // Error on close is not critical here.

	content, err := io.ReadAll(rc)
	if err != nil {
		return "", nil, fmt.Errorf("failed to unpack %s: %w", workbookFile.Name, err)
	}

	return workbookFile.Name, content, nil
}

// Workbook returns the raw xlsx content of the page.
func (p *LicensesPage) Workbook() []byte {
	return p.workbook
}

// Rows returns a lazy sequence of the license rows of the first worksheet.
// Rows up to and including the header row are skipped, blank rows are skipped too.
// A malformed workbook or cell ends the sequence with a DecodeError.
func (p *LicensesPage) Rows() iter.Seq2[*LicenseRow, error] {
	return func(yield func(*LicenseRow, error) bool) {
		workbook, err := excelize.OpenReader(bytes.NewReader(p.workbook))
		if err != nil {
			yield(nil, &DecodeError{URL: p.source, Err: err})

			return
		}

		defer workbook.Close() //nolint:errcheck // Error on close is not critical here.

		sheets := workbook.GetSheetList()
		if len(sheets) == 0 {
			yield(nil, &DecodeError{URL: p.source, Err: ErrWorksheetAbsent})

			return
		}

		rows, err := workbook.Rows(sheets[0])
		if err != nil {
			yield(nil, &DecodeError{URL: p.source, Err: err})

			return
		}

		defer rows.Close() //nolint:errcheck // Error on close is not critical here.

		var (
			rowNumber     int
			isHeaderFound bool
		)

		for rows.Next() {
			rowNumber++

			cells, columnsErr := rows.Columns()
			if columnsErr != nil {
				yield(nil, &DecodeError{URL: p.source, Err: columnsErr})

				return
			}

			if !isHeaderFound {
				isHeaderFound = len(cells) > 0 && normalizeCell(cells[0]) == licensesHeaderFirstCell

				continue
			}

			if isBlankRow(cells) {
				continue
			}

			row, rowErr := newLicenseRow(rowNumber, cells)
			if rowErr != nil {
				yield(nil, &DecodeError{URL: p.source, Err: rowErr})

				return
			}

			if !yield(row, nil) {
				return
			}
		}

		if err = rows.Error(); err != nil {
			yield(nil, &DecodeError{URL: p.source, Err: err})
		}
	}
}

func isBlankRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
