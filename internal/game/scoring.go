package game

import "fmt"

// BonusKind identifies a bonus rule.
type BonusKind int

// Bonus kinds.
const (
	BonusSpeed BonusKind = iota
	BonusQuick
	BonusStreak3
	BonusStreak5
)

// Scoring constants.
const (
	BasePoints       = 1
	SpeedWindow      = 2
	SpeedPoints      = 3
	QuickWindow      = 5
	QuickPoints      = 2
	ShortStreak      = 3
	ShortStreakBonus = 2
	LongStreak       = 5
	LongStreakBonus  = 5
)

// Bonus is an extra award on top of the base point.
type Bonus struct {
	Kind   BonusKind
	Points int
	Label  string
}

// TapResult is the scoring outcome of a single tap.
type TapResult struct {
	Correct    bool
	ScoreDelta int
	Streak     int
	Bonuses    []Bonus
}

// Labels returns the display labels of all bonuses in award order.
func (r TapResult) Labels() []string {
	labels := make([]string, len(r.Bonuses))
	for i, b := range r.Bonuses {
		labels[i] = b.Label
	}
	return labels
}

// ScoreCorrectTap scores a correct tap given the streak before the tap and the
// whole seconds elapsed since the round started.
//
// Streak bonuses fire only when the new streak equals 3 or 5 exactly.
func ScoreCorrectTap(streak, timeTaken int) TapResult {
	res := TapResult{Correct: true, ScoreDelta: BasePoints}

	switch {
	case timeTaken <= SpeedWindow:
		res.add(BonusSpeed, SpeedPoints, "Speed Bonus")
	case timeTaken <= QuickWindow:
		res.add(BonusQuick, QuickPoints, "Quick Bonus")
	}

	res.Streak = streak + 1
	switch res.Streak {
	case LongStreak:
		res.add(BonusStreak5, LongStreakBonus, "5-Streak Bonus")
	case ShortStreak:
		res.add(BonusStreak3, ShortStreakBonus, "3-Streak Bonus")
	}
	return res
}

// ScoreWrongTap resets the streak and awards nothing.
func ScoreWrongTap() TapResult {
	return TapResult{}
}

func (r *TapResult) add(kind BonusKind, points int, name string) {
	r.ScoreDelta += points
	r.Bonuses = append(r.Bonuses, Bonus{
		Kind:   kind,
		Points: points,
		Label:  fmt.Sprintf("%s +%d", name, points),
	})
}
