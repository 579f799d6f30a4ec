// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Ready-made bridges from concrete container types onto the api capability
// contracts, each claiming the highest level its backing type honestly
// supports:
//
//   - SliceOf / Slice: []E, random-access
//   - Str / String: string as runes, bidirectional only (variable-width
//     encoding rules out O(1) offsets)
//   - ChanOf / Chan: channel, single-pass sequence
//   - Queue / FromQueue: eapache ring queue, random-access
//   - Bits / FromBitSet: bitset, random-access collection of bool
//   - CMap / FromCMap: concurrent-map snapshot, single-pass sequence
//   - HashedStrings / Strings: ordered strings with an xxhash digest index
//     supplying the O(1) membership shortcut
//
// Wrapping is a snapshot of the container's boundaries: mutating the
// backing container after wrapping breaks the external contract this layer
// trusts.
package adapters
