// Package selfcheck verifies the kernel families compiled into this build
// against scalar references and measures their throughput.
//
// The primitive packages never log and never return errors. This package is
// where the ambient concerns live: structured logging, typed errors and
// metrics recording, all driven by functional options.
//
//	report, err := selfcheck.Run(ctx, selfcheck.WithMaxSize(512))
//	var mismatch *selfcheck.MismatchError
//	if errors.As(err, &mismatch) {
//		// a kernel disagrees with the reference
//	}
package selfcheck
