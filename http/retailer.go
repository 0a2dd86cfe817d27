package http

import (
	"github.com/labstack/echo/v4"
)

// handleListRetailers returns the full retailer catalog.
func (s *Server) handleListRetailers(c echo.Context) error {
	ctx, cancel := withTimeout(c, DefaultTimeout)
	defer cancel()

	retailers, err := s.retailerService.FindRetailers(ctx)
	if err != nil {
		return err
	}
	return OK(c, retailers)
}

// handleGetRetailer returns one retailer by ID.
func (s *Server) handleGetRetailer(c echo.Context) error {
	id, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, DefaultTimeout)
	defer cancel()

	retailer, err := s.retailerService.FindRetailerByID(ctx, id)
	if err != nil {
		return err
	}
	return OK(c, retailer)
}

// handleListPlacements returns the placements offered by one retailer.
func (s *Server) handleListPlacements(c echo.Context) error {
	id, err := requireUUIDParam(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(c, DefaultTimeout)
	defer cancel()

	// Surface a 404 for unknown retailers rather than an empty list.
	if _, err := s.retailerService.FindRetailerByID(ctx, id); err != nil {
		return err
	}

	placements, err := s.retailerService.FindPlacementsByRetailer(ctx, id)
	if err != nil {
		return err
	}
	return OK(c, placements)
}
