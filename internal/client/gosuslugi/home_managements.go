package gosuslugi

import (
	"context"
	"iter"
	"net/http"
	"net/url"
	"strconv"
)

// GetHomeManagements returns a lazy sequence of home management pages of an organization.
// The first page is always requested; its total decides how many pages follow.
// Each page is requested only when the consumer asks for it; an error ends the sequence.
func (c *ClientImpl) GetHomeManagements(
	ctx context.Context,
	filter HomeManagementsFilter,
) (iter.Seq2[*HomeManagementsPage, error], error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	filter = filter.withDefaults(c.homeManagementsPerPage)

	return func(yield func(*HomeManagementsPage, error) bool) {
		lastPage := filter.StartPage

		for pageIndex := filter.StartPage; pageIndex <= lastPage; pageIndex++ {
			page, err := c.getHomeManagementsPage(ctx, filter, pageIndex)
			if err != nil {
				yield(nil, err)

				return
			}

			if pageIndex == filter.StartPage {
				lastPage = max(pagesCount(page.Total, filter.PerPage), filter.StartPage)
			}

			if !yield(page, nil) {
				return
			}
		}
	}, nil
}

func (c *ClientImpl) getHomeManagementsPage(
	ctx context.Context,
	filter HomeManagementsFilter,
	pageIndex int,
) (*HomeManagementsPage, error) {
	query := url.Values{}
	query.Set("pageIndex", strconv.Itoa(pageIndex))
	query.Set("elementsPerPage", strconv.Itoa(filter.PerPage))

	result, err := fetchJSON[homeManagementsResponse](c, ctx, &apiRequest{
		method: http.MethodPost,
		uri:    []string{homeManagementsURI},
		query:  query,
		payload: &homeManagementsRequest{
			OrganizationGUID: filter.OrganizationGUID,
			CalcCount:        true,
		},
	})
	if err != nil {
		return nil, err
	}

	page := &HomeManagementsPage{
		PageIndex: pageIndex,
		PerPage:   filter.PerPage,
		Items:     make([]Record, 0),
	}

	if result == nil {
		return page, nil
	}

	if result.Total != nil {
		page.Total = *result.Total
	}

	if result.Items != nil {
		page.Items = result.Items
	}

	return page, nil
}

func pagesCount(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}

	return (total + perPage - 1) / perPage
}
