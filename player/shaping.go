package player

import (
	"math"

	"github.com/milk9111/wallkick/common"
)

// ShapeSpeed returns the acceleration that pulls current toward target:
// sign(d) * (|d| * rate) ^ curve with d = target - current. rate is decel
// when target is zero and accel otherwise. A curve below 1 pulls harder far
// from the target.
//
// Nothing is returned when current already exceeds a non-zero target in the
// same direction, so momentum from a wall jump or a pad is never braked.
func ShapeSpeed(current, target, accel, decel, curve float64) float64 {
	if target != 0 && common.Sign(current) == common.Sign(target) && math.Abs(current) > math.Abs(target) {
		return 0
	}

	rate := accel
	if target == 0 {
		rate = decel
	}
	diff := target - current
	if diff == 0 || rate <= 0 {
		return 0
	}
	return common.Sign(diff) * math.Pow(math.Abs(diff)*rate, curve)
}
