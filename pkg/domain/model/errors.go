package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for the dataset and filter error taxonomy
var (
	// ErrTagFetch marks network or non-2xx HTTP failures retrieving the dataset
	ErrTagFetch = goerr.NewTag("fetch_error")
	// ErrTagParse marks a payload that cannot be decoded as an incident workbook
	ErrTagParse = goerr.NewTag("parse_error")
	// ErrTagInvalidFilter marks malformed filter input at the API boundary
	ErrTagInvalidFilter = goerr.NewTag("invalid_filter")
)
