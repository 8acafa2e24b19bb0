package utils

import (
	"time"

	"github.com/google/uuid"
)

// NewTxRef builds the public transaction reference for an order.
func NewTxRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
