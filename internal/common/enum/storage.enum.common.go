package enum

type StorageBackendEnum string

const (
	STORAGE_LOCAL StorageBackendEnum = "local"
	STORAGE_S3    StorageBackendEnum = "s3"
)

func (e StorageBackendEnum) ToString() string {
	switch e {
	case STORAGE_LOCAL:
		return "local"
	case STORAGE_S3:
		return "s3"
	}
	return ""
}

func (e StorageBackendEnum) IsValid() bool {
	switch e {
	case STORAGE_LOCAL, STORAGE_S3:
		return true
	}
	return false
}
