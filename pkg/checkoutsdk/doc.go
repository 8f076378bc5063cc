/*
Package checkoutsdk drives the InPayOS hosted checkout protocol: the
multi-step payment flow from order creation through information retrieval,
payment-method negotiation, payment submission, and confirmation.

# Client vs Controller

The package is organised around two types:

  - Client: speaks the raw wire contract (create / info / services / submit /
    confirm) and injects the bearer token where a call requires one.
  - Controller: owns one checkout session on top of a Client -- the five-state
    lifecycle, the session token, the expiry countdown, and the resolved
    payment method options.

Create a Controller and walk the flow in order:

	client := checkoutsdk.NewClient("https://pay.example.com")
	ctrl := checkoutsdk.NewController(client, logger)

	err := ctrl.Create(ctx, checkoutsdk.CreateForm{
		Amount:    "100.00",
		ProductID: "p1",
		ReturnURL: "https://merchant.example.com/ok",
		NotifyURL: "https://merchant.example.com/hook",
	})

	err = ctrl.LoadInfo(ctx, "")       // mints the bearer token, resolves options
	err = ctrl.SelectMethod("upi")     // local transition, no network
	err = ctrl.Submit(ctx)             // stores the transaction + typed payload
	conf, err := ctrl.Confirm(ctx, checkoutsdk.ConfirmProof{})

Hosted widgets that receive the checkout identifier out-of-band skip Create
and start at LoadInfo(ctx, checkoutID).

# Session lifecycle

Idle -> Created -> InfoLoaded -> MethodSelected -> Submitted -> Confirmed.
State only advances; Back regresses exactly one step from MethodSelected or
Submitted, and Reset discards everything for a fresh attempt. State never
advances on a failed operation, so the caller may retry the same call.

# Expiry

The info response carries an absolute session deadline. The Controller tracks
it with an ExpiryClock that recomputes remaining time from the wall clock on
every tick, fires a single expiration signal, and freezes further submits.
An expired session before submission is dead; Reset and start over.

# Errors

Operations return sentinel errors (ErrSessionExpired, ErrInvalidSelection,
ErrMethodRejected, ...) matchable with errors.Is, plus *ValidationError for
pre-network input failures and *BackendError for unmapped envelope codes.
The Controller never retries on its own; transport-level concerns such as
401 token refresh belong to the http.Client the Client is built with.
*/
package checkoutsdk
