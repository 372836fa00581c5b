package service

import (
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/model"
	"github.com/GopalChinta/Online-Fraud-Detection/internal/domain/valueobject"
)

// ExtractFeatures derives the feature vector for one scoring call. Apart from
// the amount, every feature is a fresh random draw taken in a fixed order:
// customer history, merchant reputation, location, time of day, device, ip.
func ExtractFeatures(tx model.Transaction, rnd RandomSource) model.FeatureVector {
	f := model.FeatureVector{
		Amount:     tx.Amount().InexactFloat64(),
		AmountRisk: valueobject.AmountRisk(tx.Amount()),
	}
	f.CustomerHistory = rnd.Float64()
	f.MerchantReputation = rnd.Float64()
	f.LocationRisk = rnd.Float64()
	f.TimeOfDay = rnd.Float64()
	f.DeviceRisk = rnd.Float64()
	f.IPRisk = rnd.Float64()
	return f
}
