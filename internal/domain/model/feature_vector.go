package model

// Feature names accepted by FeatureVector.Get.
const (
	FeatureAmount             = "amount"
	FeatureAmountRisk         = "amount_risk"
	FeatureCustomerHistory    = "customer_history"
	FeatureMerchantReputation = "merchant_reputation"
	FeatureLocationRisk       = "location_risk"
	FeatureTimeOfDay          = "time_of_day"
	FeatureDeviceRisk         = "device_risk"
	FeatureIPRisk             = "ip_risk"
)

var featureNames = []string{
	FeatureAmount,
	FeatureAmountRisk,
	FeatureCustomerHistory,
	FeatureMerchantReputation,
	FeatureLocationRisk,
	FeatureTimeOfDay,
	FeatureDeviceRisk,
	FeatureIPRisk,
}

// FeatureVector holds the features derived from one transaction for one
// scoring call. Every field except Amount lies in [0,1].
type FeatureVector struct {
	Amount             float64
	AmountRisk         float64
	CustomerHistory    float64
	MerchantReputation float64
	LocationRisk       float64
	TimeOfDay          float64
	DeviceRisk         float64
	IPRisk             float64
}

// Get returns the named feature.
func (f FeatureVector) Get(name string) (float64, bool) {
	switch name {
	case FeatureAmount:
		return f.Amount, true
	case FeatureAmountRisk:
		return f.AmountRisk, true
	case FeatureCustomerHistory:
		return f.CustomerHistory, true
	case FeatureMerchantReputation:
		return f.MerchantReputation, true
	case FeatureLocationRisk:
		return f.LocationRisk, true
	case FeatureTimeOfDay:
		return f.TimeOfDay, true
	case FeatureDeviceRisk:
		return f.DeviceRisk, true
	case FeatureIPRisk:
		return f.IPRisk, true
	default:
		return 0, false
	}
}

// Names lists the feature names in a stable order.
func (f FeatureVector) Names() []string {
	out := make([]string, len(featureNames))
	copy(out, featureNames)
	return out
}
