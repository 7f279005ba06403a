package models

import "time"

// Bucket names an attachment bucket in the object storage.
type Bucket string

const (
	// BucketImages stores note images.
	BucketImages Bucket = "images"
	// BucketVoice stores voice recordings.
	BucketVoice Bucket = "voice"
)

// Valid reports whether b is one of the known buckets.
func (b Bucket) Valid() bool {
	return b == BucketImages || b == BucketVoice
}

// AttachmentInfo is the metadata of a stored attachment, as returned by a
// metadata-only request.
type AttachmentInfo struct {
	Bucket    Bucket    `json:"bucket"`
	Name      string    `json:"name"`
	SizeBytes int64     `json:"size_bytes"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StorageUsage is the derived per-user storage accounting. It is never
// persisted; it is recomputed from the live note set on demand.
type StorageUsage struct {
	UsedBytes  int64 `json:"used_bytes"`
	QuotaBytes int64 `json:"quota_bytes"`
	// Unlimited marks the privileged account exempt from the quota ceiling.
	Unlimited bool `json:"unlimited"`
}

// Exceeded reports whether usage is over the quota. Unlimited accounts
// never exceed it.
func (u StorageUsage) Exceeded() bool {
	return !u.Unlimited && u.UsedBytes > u.QuotaBytes
}

// Percent returns the used share of the quota in the 0..100+ range.
func (u StorageUsage) Percent() float64 {
	if u.QuotaBytes <= 0 {
		return 0
	}
	return float64(u.UsedBytes) * 100 / float64(u.QuotaBytes)
}
