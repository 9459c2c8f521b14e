package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// RazorpaySignature computes the expected confirmation signature for a
// gateway order/payment pair: HMAC-SHA256 over "<order_id>|<payment_id>"
// keyed by the gateway secret, hex encoded.
func RazorpaySignature(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyRazorpaySignature checks a client-supplied confirmation signature
// against the recomputed one. Must pass before any order or subscription
// is persisted as paid.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	expected := RazorpaySignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
