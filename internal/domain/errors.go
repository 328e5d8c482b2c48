package domain

import "errors"

// ErrDuplicateTransaction is surfaced by the transaction repository when the
// (order_id, user_id, type) unique constraint fires. Settlement treats it as
// the idempotent-skip signal.
var ErrDuplicateTransaction = errors.New("transaction already exists")
