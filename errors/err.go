package errors

import (
	"fmt"
)

var (
	ErrInvalidConfig  = fmt.Errorf("crewsearch: invalid config")
	ErrInvalidParams  = fmt.Errorf("crewsearch: invalid params")
	ErrNotFound       = fmt.Errorf("crewsearch: not found")
	ErrSearch         = fmt.Errorf("crewsearch: search failed")
	ErrCrewExecution  = fmt.Errorf("crewsearch: crew execution failed")
	ErrInvalidRequest = fmt.Errorf("crewsearch: invalid request")
)
