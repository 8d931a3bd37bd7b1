package cli

import (
	"context"
	"errors"

	"github.com/dbelyaev/taskvault/internal/common"
)

// routineErrs are the expected user-input failures. They get a plain
// notification and no diagnostic logging.
var routineErrs = []error{
	common.ErrValidation,
	common.ErrAccountExists,
	common.ErrNoUsersRegistered,
	common.ErrUserNotFound,
	common.ErrWrongPassword,
	common.ErrNoSession,
	common.ErrEmptyText,
}

// notifyErr converts a data-layer failure into a user-visible notification.
// Anything outside the routine kinds is treated as a storage-level failure:
// logged distinctly and reported with a generic message, never a crash.
func (a *App) notifyErr(ctx context.Context, err error) {
	for _, routine := range routineErrs {
		if errors.Is(err, routine) {
			printlnFn("Error:", err.Error())
			return
		}
	}
	a.log.Error(ctx, "storage failure", "error", err)
	printlnFn("Error: something went wrong, see the log for details")
}
