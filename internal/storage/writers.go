package storage

import "github.com/acollard/mp-register/internal/register"

// DonationWriter is the interface any export backend must satisfy.
type DonationWriter interface {
	Write(members []*register.Member) error
	Close() error
}
