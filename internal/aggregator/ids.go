package aggregator

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"

	"github.com/Belphemur/NewReleases/internal/models"
)

// RecordID returns the stable identifier of the release record established
// by the library item with the given internal id.
func RecordID(internalID int64) string {
	return hashID(models.ReleaseIDPrefix + strconv.FormatInt(internalID, 10))
}

// HostRecordID is RecordID for hosts whose item ids are not numeric. For a
// numeric string it yields the same value as RecordID.
func HostRecordID(hostID string) string {
	return hashID(models.ReleaseIDPrefix + hostID)
}

func recordIDOf(item models.RawItem) string {
	if item.HostID != "" {
		return HostRecordID(item.HostID)
	}
	return RecordID(item.InternalID)
}

// SourceID returns the stable identifier of the media source at path
func SourceID(path string) string {
	return hashID(models.ReleaseIDPrefix + path)
}

func hashID(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
