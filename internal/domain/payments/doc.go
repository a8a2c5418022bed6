// Package payments holds the payment vocabulary shared by tickets and applications:
// local payment statuses, gateway order and status types, and the reconciliation contracts.
package payments
