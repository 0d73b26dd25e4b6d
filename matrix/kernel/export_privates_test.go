// SPDX-License-Identifier: MIT

package kernel

// ResolveBackend_TestOnly exposes the environment lookup behind Default
// with an injectable getenv.
var ResolveBackend_TestOnly = resolveBackend
