package transport

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"bananex-be/internal/admin"
	"bananex-be/internal/gallery"
	"bananex-be/internal/inquiry"
	"bananex-be/internal/invoice"
	"bananex-be/internal/logger"
	"bananex-be/internal/notification"
	"bananex-be/internal/order"
	"bananex-be/internal/price"
	"bananex-be/internal/product"
	"bananex-be/internal/user"
)

var validationErrors = []error{
	order.ErrInvalidStatus,
	order.ErrEmptyOrder,
	order.ErrInvalidQuantity,
	invoice.ErrItemCount,
	invoice.ErrInvalidTotal,
	invoice.ErrNoNumber,
	user.ErrMissingFields,
	user.ErrInvalidEmail,
	user.ErrInvalidPhone,
	user.ErrInvalidUserStatus,
	product.ErrNameRequired,
	price.ErrInvalidPrice,
	inquiry.ErrMissingFields,
	inquiry.ErrInvalidStatus,
	admin.ErrMissingCredentials,
	notification.ErrEmptyMessage,
	notification.ErrInvalidType,
	gallery.ErrUnsupportedType,
	gallery.ErrEmptyFile,
}

var notFoundErrors = []error{
	order.ErrOrderNotFound,
	invoice.ErrOrderNotFound,
	invoice.ErrInvoiceNotFound,
	user.ErrUserNotFound,
	product.ErrProductNotFound,
	price.ErrPriceNotFound,
	inquiry.ErrInquiryNotFound,
	inquiry.ErrUserNotFound,
	notification.ErrNotFound,
	notification.ErrUserNotFound,
	gallery.ErrImageNotFound,
}

// Conflicts surface as 400 with a message naming the states involved.
var conflictErrors = []error{
	order.ErrIllegalTransition,
	invoice.ErrOrderNotConfirmed,
	invoice.ErrInvoiceExists,
	user.ErrEmailExists,
	user.ErrAlertExists,
	price.ErrDuplicateDate,
}

// respondDomainError maps a service error onto an HTTP response.
// Anything unrecognized is a storage or internal failure: log the
// detail, answer with a generic 500.
func respondDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	for _, n := range notFoundErrors {
		if errors.Is(err, n) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
	}
	for _, c := range conflictErrors {
		if errors.Is(err, c) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	// Bad product references inside an order body are the caller's
	// fault, not a missing resource on the path.
	if errors.Is(err, order.ErrProductNotFound) || errors.Is(err, price.ErrProductNotFound) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, user.ErrInvalidCredentials) || errors.Is(err, admin.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	logger.FromCtx(ctx).Error("internal error", zap.Error(err))
	respondError(w, http.StatusInternalServerError, "something went wrong")
}
