// Package connector contains the clients of external systems: blob storage,
// the payment gateway, the gateway token cache and the content backend.
package connector
