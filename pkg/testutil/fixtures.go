package testutil

import (
	"github.com/google/uuid"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/application/dto"
)

// Fixed UUIDs for deterministic testing
var (
	TestDetectionID1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestDetectionID2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)

// Seeds that make scoring reproducible across test runs.
const (
	TestSeed      uint64 = 42
	TestOtherSeed uint64 = 4242
)

// Fields of the sample transaction used throughout the tests: a MEDIUM tier
// card payment.
const (
	SampleAmount     = "1250.00"
	SampleMerchantID = "MERCH-8765"
	SampleCustomerID = "CUST-1234"
	SampleLocation   = "New York, USA"
	SampleDeviceID   = "DEV-5678"
	SampleIPAddress  = "192.168.1.1"
	SampleTimestamp  = "2023-03-15T14:30:00Z"
)

// SampleRequestJSON is the sample transaction as a request body.
const SampleRequestJSON = `{
	"amount": "1250.00",
	"merchantId": "MERCH-8765",
	"customerId": "CUST-1234",
	"location": "New York, USA",
	"deviceId": "DEV-5678",
	"ipAddress": "192.168.1.1",
	"timestamp": "2023-03-15T14:30:00Z"
}`

// SampleDetectRequest returns the sample transaction, optionally overriding its
// amount.
func SampleDetectRequest(amount ...string) dto.DetectRequest {
	req := dto.DetectRequest{
		Amount:     SampleAmount,
		MerchantID: SampleMerchantID,
		CustomerID: SampleCustomerID,
		Location:   SampleLocation,
		DeviceID:   SampleDeviceID,
		IPAddress:  SampleIPAddress,
		Timestamp:  SampleTimestamp,
	}
	if len(amount) > 0 {
		req.Amount = dto.Amount(amount[0])
	}
	return req
}
