package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRazorpaySignature(t *testing.T) {
	sig := RazorpaySignature("order_abc123", "pay_xyz789", "test_secret")

	require.Len(t, sig, 64)
	// Same inputs always produce the same signature
	assert.Equal(t, sig, RazorpaySignature("order_abc123", "pay_xyz789", "test_secret"))
	// Any change to the inputs changes the signature
	assert.NotEqual(t, sig, RazorpaySignature("order_abc124", "pay_xyz789", "test_secret"))
	assert.NotEqual(t, sig, RazorpaySignature("order_abc123", "pay_xyz790", "test_secret"))
	assert.NotEqual(t, sig, RazorpaySignature("order_abc123", "pay_xyz789", "other_secret"))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	orderID := "order_NkL3pQ7rT2vXyZ"
	paymentID := "pay_MqW8sD4fG6hJkL"
	secret := "rzp_test_secret"

	valid := RazorpaySignature(orderID, paymentID, secret)

	assert.True(t, VerifyRazorpaySignature(orderID, paymentID, valid, secret))

	// Flip one character of the signature
	tampered := []byte(valid)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	assert.False(t, VerifyRazorpaySignature(orderID, paymentID, string(tampered), secret))

	// Swapped order and payment IDs must not verify
	assert.False(t, VerifyRazorpaySignature(paymentID, orderID, valid, secret))
	// Wrong secret must not verify
	assert.False(t, VerifyRazorpaySignature(orderID, paymentID, valid, "wrong_secret"))
	// Empty signature must not verify
	assert.False(t, VerifyRazorpaySignature(orderID, paymentID, "", secret))
}
