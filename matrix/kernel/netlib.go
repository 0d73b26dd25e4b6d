//go:build cgo && netlib

// SPDX-License-Identifier: MIT

package kernel

// Registers the netlib backend, which calls the system CBLAS (OpenBLAS on
// Linux, Accelerate on macOS). Built only with `-tags netlib` and cgo enabled,
// with CGO_LDFLAGS pointing at the BLAS library.

import (
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/netlib/blas/netlib"
)

// NameNetlib is the registry key of the cgo CBLAS backend.
const NameNetlib = "netlib"

func init() {
	blas64.Use(netlib.Implementation{})
	Register(NewBLAS(NameNetlib, netlib.Implementation{}))
	log.Debug().Str("backend", NameNetlib).Msg("kernel: cgo BLAS registered")
}
