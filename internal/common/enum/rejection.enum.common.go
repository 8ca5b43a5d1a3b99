package enum

type RejectionReasonEnum string

const (
	UNSUPPORTED_MEDIA_TYPE    RejectionReasonEnum = "UnsupportedMediaType"
	EXTENSION_MISMATCH        RejectionReasonEnum = "ExtensionMismatch"
	DIMENSION_EXCEEDED        RejectionReasonEnum = "DimensionExceeded"
	FORMAT_NOT_DECODABLE      RejectionReasonEnum = "FormatNotDecodable"
	DISALLOWED_DECODED_FORMAT RejectionReasonEnum = "DisallowedDecodedFormat"
	DECLARED_TYPE_MISMATCH    RejectionReasonEnum = "DeclaredTypeMismatch"
	ALPHA_IN_JPEG_ANOMALY     RejectionReasonEnum = "AlphaInJpegAnomaly"
	SCAN_INFECTED             RejectionReasonEnum = "Infected"
	SCAN_FAILED               RejectionReasonEnum = "ScanFailed"
)

func (e RejectionReasonEnum) ToString() string {
	return string(e)
}

func (e RejectionReasonEnum) IsValid() bool {
	switch e {
	case UNSUPPORTED_MEDIA_TYPE, EXTENSION_MISMATCH, DIMENSION_EXCEEDED, FORMAT_NOT_DECODABLE,
		DISALLOWED_DECODED_FORMAT, DECLARED_TYPE_MISMATCH, ALPHA_IN_JPEG_ANOMALY, SCAN_INFECTED, SCAN_FAILED:
		return true
	}
	return false
}

/*----------- BatchStatusEnum -----------*/

type BatchStatusEnum string

const (
	BATCH_ACCEPTED BatchStatusEnum = "accepted"
	BATCH_REJECTED BatchStatusEnum = "rejected"
	BATCH_FAILED   BatchStatusEnum = "failed"
)

func (e BatchStatusEnum) ToString() string {
	return string(e)
}

func (e BatchStatusEnum) IsValid() bool {
	switch e {
	case BATCH_ACCEPTED, BATCH_REJECTED, BATCH_FAILED:
		return true
	}
	return false
}
