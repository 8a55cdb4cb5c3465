// Package cloud holds the output of a sampling pass: an ordered, immutable
// list of instance placements ready for instanced point rendering.
//
// A [Cloud] is only constructed once sampling completes. Its backing slice is
// taken over from the sampler without copying, and no method mutates it.
package cloud
