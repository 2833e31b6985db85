// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package api

// Messages returned to the dashboard.
const (
	msgStatsFailed          = "Failed to fetch fish statistics"
	msgAuthFailed           = "Authentication failed: "
	msgWorkbooksFailed      = "Failed to fetch workbooks: "
	msgConnectionTestFailed = "Connection test failed: "
	msgConfigIncomplete     = "Tableau configuration incomplete"
	msgExportFailed         = "Failed to export data"
	msgAbnormalitiesFailed  = "Failed to fetch abnormality data"
	msgCopernicusNoCreds    = "Copernicus Marine credentials not configured"
	msgCopernicusFailed     = "Failed to fetch marine data"
	msgImageURLRequired     = "imageUrl is required"
	msgImageFetchFailed     = "Failed to fetch image"
	msgImageTooLarge        = "Image exceeds size limit"
	msgInternal             = "Internal Server Error"
	msgInvalidBody          = "Invalid request body"
	msgRateLimited          = "Too many requests"
)
