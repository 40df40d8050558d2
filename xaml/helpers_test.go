package xaml_test

import "go.uber.org/multierr"

func multierrErrors(err error) []error {
	return multierr.Errors(err)
}
