package http

// registerRoutes sets up all routes for the server.
func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	api := s.echo.Group("/api")

	// Creative analysis
	api.POST("/creatives/analyze", s.handleAnalyzeCreative)

	// Retailer catalog
	api.GET("/retailers", s.handleListRetailers)
	api.GET("/retailers/:id", s.handleGetRetailer)
	api.GET("/retailers/:id/placements", s.handleListPlacements)

	// Analysis reports
	api.GET("/reports", s.handleListReports)
	api.GET("/reports/:id", s.handleGetReport)
}
