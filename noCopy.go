// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bchan

// noCopy marks a type as non-copyable for go vet's -copylocks check, the
// same convention sync.WaitGroup and sync.Mutex use. Embedding it as an
// unexported field makes `y := *x` (or passing x by value) a vet
// failure rather than a silent duplicate of a channel's single strong
// owner.
//
// Strong endpoints (MPSCReceiver, SPMCSender, and the Channel facades)
// embed noCopy; copyable endpoints (MPSCSender, SPMCReceiver) do not.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
