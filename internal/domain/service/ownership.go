package service

import (
	domainerrors "skillhub/internal/domain/errors"
)

// AuthorizeMutation decides whether actingPrincipal may update or delete a
// resource recorded as belonging to resourceOwner. Every mutation path for
// every owned resource kind calls this single check instead of repeating the
// comparison inline. Creation paths never call it; they stamp the acting
// principal as the new owner instead.
//
// Both arguments are opaque principal identifiers and are compared for
// equality only.
func AuthorizeMutation(resourceOwner, actingPrincipal string) error {
	if actingPrincipal == "" || resourceOwner != actingPrincipal {
		return domainerrors.ErrForbidden.WrapMessage("acting principal is not the resource owner")
	}

	return nil
}
