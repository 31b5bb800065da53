package dashboard

import "errors"

// ErrForbiddenScope is returned when a viewer requests an aggregation scope
// their role does not permit. Surfaced to the view for contextual messaging,
// never as a generic toast.
var ErrForbiddenScope = errors.New("viewer role does not permit this scope")
