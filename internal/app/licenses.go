package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/gosuslugi-grabber/internal/client/gosuslugi"
	"github.com/oshokin/gosuslugi-grabber/internal/constants"
	"github.com/oshokin/gosuslugi-grabber/internal/logger"
	"github.com/oshokin/gosuslugi-grabber/internal/utils"
)

// LicensesOptions configures a licenses run.
type LicensesOptions struct {
	// RegionCodes are the regions to download, in order.
	RegionCodes []gosuslugi.RegionCode
	// SaveDir is the folder raw workbooks are saved to; empty disables saving.
	SaveDir string
	// ActiveOnly skips rows of licenses that are not in force.
	ActiveOnly bool
}

// licenseRecord is a printed license row together with its region.
type licenseRecord struct {
	RegionCode           string `json:"region_code" yaml:"region_code"`
	RegionName           string `json:"region_name" yaml:"region_name"`
	gosuslugi.LicenseRow `yaml:",inline"`
}

// ParseRegionCodes collects region codes from arguments and from a file with one code per line.
// Blank lines and "#" comments in the file are skipped.
// With all set, every known region is returned. Duplicates are dropped, the first occurrence wins.
func ParseRegionCodes(args []string, codesFile string, all bool) ([]gosuslugi.RegionCode, error) {
	if all {
		return gosuslugi.RegionCodes(), nil
	}

	texts := slices.Clone(args)

	if codesFile != "" {
		lines, err := utils.ReadLinesFromFile(codesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read region codes file: %w", err)
		}

		texts = append(texts, lines...)
	}

	codes := make([]gosuslugi.RegionCode, 0, len(texts))

	for _, text := range texts {
		code, err := gosuslugi.ParseRegionCode(text)
		if err != nil {
			return nil, err
		}

		codes = append(codes, code)
	}

	if len(codes) == 0 {
		return nil, ErrNoRegionCodes
	}

	return utils.Unique(codes), nil
}

// Licenses downloads the license workbooks of the given regions and prints their rows.
func (a *App) Licenses(ctx context.Context, options LicensesOptions) error {
	if len(options.RegionCodes) == 0 {
		return ErrNoRegionCodes
	}

	pages, err := a.client.GetLicenses(ctx, options.RegionCodes)
	if err != nil {
		return err
	}

	var (
		bar          = a.newProgressBar(len(options.RegionCodes), "Downloading licenses")
		rowsCount    int
		regionsCount int
	)

	for page, pageErr := range pages {
		if pageErr != nil {
			return pageErr
		}

		regionCtx := logger.WithKV(ctx, "region", page.RegionCode.String())

		if options.SaveDir != "" {
			if err = saveWorkbook(regionCtx, options.SaveDir, page); err != nil {
				return err
			}
		}

		count, printErr := a.printLicenseRows(page, options.ActiveOnly)
		if printErr != nil {
			return printErr
		}

		logger.Debugf(regionCtx, "Printed %d license rows of %s", count, page.RegionName)

		rowsCount += count
		regionsCount++

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	logger.Infof(ctx, "Printed %s license rows of %d regions", humanize.Comma(int64(rowsCount)), regionsCount)

	return nil
}

func (a *App) printLicenseRows(page *gosuslugi.LicensesPage, activeOnly bool) (int, error) {
	var count int

	for row, err := range page.Rows() {
		if err != nil {
			return count, err
		}

		if activeOnly && !row.IsLicenseActive() {
			continue
		}

		err = a.printer.Print(&licenseRecord{
			RegionCode: page.RegionCode.String(),
			RegionName: page.RegionName,
			LicenseRow: *row,
		})
		if err != nil {
			return count, err
		}

		count++
	}

	return count, nil
}

// saveWorkbook writes the raw workbook of a page as "<code> <region name>.xlsx".
func saveWorkbook(ctx context.Context, saveDir string, page *gosuslugi.LicensesPage) error {
	if err := os.MkdirAll(saveDir, constants.DefaultFolderPermissions); err != nil {
		return fmt.Errorf("failed to create folder for workbooks: %w", err)
	}

	filename := utils.SetFileExtension(
		utils.SanitizeFilename(fmt.Sprintf("%s %s", page.RegionCode, page.RegionName)),
		constants.ExtensionXLSX)

	workbookPath := filepath.Join(saveDir, filename)

	workbook := page.Workbook()
	if err := os.WriteFile(workbookPath, workbook, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Infof(ctx, "Saved %s (%s)", workbookPath, humanize.Bytes(uint64(len(workbook))))

	return nil
}
