// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"fmt"

	"cogentcore.org/armas/base/errors"
)

// ErrMissingCapability is the error wrapped by every [CapabilityError].
var ErrMissingCapability = errors.New("surface: host is missing a required capability")

// CapabilityError is returned by [Check] when a host
// does not implement part of [Surface].
type CapabilityError struct {

	// Capability is the name of the missing interface.
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("surface: host does not provide %s; it must implement surface.%s", e.Capability, e.Capability)
}

func (e *CapabilityError) Unwrap() error {
	return ErrMissingCapability
}

// Check returns a [CapabilityError] for the first part of [Surface]
// that host does not implement, and nil if it implements all of it.
func Check(host any) error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"Painter", is[Painter](host)},
		{"Layouter", is[Layouter](host)},
		{"Input", is[Input](host)},
		{"Identity", is[Identity](host)},
		{"Clock", is[Clock](host)},
		{"Cache", is[Cache](host)},
		{"Scheduler", is[Scheduler](host)},
		{"Values", is[Values](host)},
	}
	for _, c := range checks {
		if !c.ok {
			return &CapabilityError{Capability: c.name}
		}
	}
	return nil
}

// MustCheck returns host as a [Surface], panicking with a descriptive
// message if it is missing a capability. Hosts call it once at startup.
func MustCheck(host any) Surface {
	if err := Check(host); err != nil {
		panic(fmt.Sprintf("%v (host type %T)", err, host))
	}
	return host.(Surface)
}

func is[T any](v any) bool {
	_, ok := v.(T)
	return ok
}
