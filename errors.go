package cembed

import "fmt"

// HeaderErr reports malformed header content.
type HeaderErr string

func (o *HeaderErr) Error() string {
	return string(*o)
}

func newHeaderErr(format string, a ...interface{}) *HeaderErr {
	err := HeaderErr(fmt.Sprintf(format, a...))
	return &err
}
