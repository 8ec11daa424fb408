package app

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/oshokin/gosuslugi-grabber/internal/client/gosuslugi"
	"github.com/oshokin/gosuslugi-grabber/internal/logger"
	"github.com/oshokin/gosuslugi-grabber/internal/utils"
)

// regionRecord is a printed row of the region reference.
type regionRecord struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Regions prints the region reference.
func (a *App) Regions(_ context.Context) error {
	regions := utils.Map(gosuslugi.RegionCodes(), func(code gosuslugi.RegionCode) regionRecord {
		return regionRecord{Code: code.String(), Name: code.Name()}
	})

	return a.printer.Print(regions)
}

// Organizations prints the organizations registered under an INN.
func (a *App) Organizations(ctx context.Context, filter gosuslugi.OrganizationsFilter) error {
	organizations, err := a.client.GetOrganizations(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to search organizations: %w", err)
	}

	if len(organizations) == 0 {
		logger.Warnf(ctx, "No organizations found with INN %s", filter.INN)
	}

	return a.printer.Print(organizations)
}

// Organization prints a single organization.
func (a *App) Organization(ctx context.Context, guid string) error {
	organization, err := a.client.GetOrganization(ctx, guid)
	if err != nil {
		return fmt.Errorf("failed to get organization: %w", err)
	}

	return a.printer.Print(organization)
}

// Houses prints the FIAS houses of a house code.
func (a *App) Houses(ctx context.Context, filter gosuslugi.HousesFilter) error {
	houses, err := a.client.GetHouses(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get houses: %w", err)
	}

	if len(houses) == 0 {
		logger.Warnf(ctx, "No houses found with code %s", filter.HouseCode)
	}

	return a.printer.Print(houses)
}

// HomeManagements prints every page of the home management listing of an organization.
func (a *App) HomeManagements(ctx context.Context, filter gosuslugi.HomeManagementsFilter) error {
	pages, err := a.client.GetHomeManagements(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list home managements: %w", err)
	}

	var (
		bar         *progressbar.ProgressBar
		itemsCount  int
		total       int
		isFirstPage = true
	)

	for page, pageErr := range pages {
		if pageErr != nil {
			return fmt.Errorf("failed to list home managements: %w", pageErr)
		}

		if isFirstPage {
			isFirstPage = false
			total = page.Total
			bar = a.newProgressBar(total, "Listing home managements")
		}

		if err = a.printer.Print(page); err != nil {
			return err
		}

		itemsCount += len(page.Items)

		if bar != nil {
			_ = bar.Add(len(page.Items))
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	logger.Infof(ctx, "Printed %s of %s home managements",
		humanize.Comma(int64(itemsCount)), humanize.Comma(int64(total)))

	return nil
}

// HomeManagement prints a single home management.
func (a *App) HomeManagement(ctx context.Context, guid string) error {
	homeManagement, err := a.client.GetHomeManagement(ctx, guid)
	if err != nil {
		return fmt.Errorf("failed to get home management: %w", err)
	}

	return a.printer.Print(homeManagement)
}
