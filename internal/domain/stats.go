package domain

// AgeStats - агрегаты по возрасту всех участников.
type AgeStats struct {
	Count int64
	Sum   int64
	Avg   float64
	Min   int
	Max   int
}

// TeamAgeStat - средний возраст в команде.
type TeamAgeStat struct {
	TeamName    string
	MemberCount int64
	AvgAge      float64
}

// AgeBracketStat - количество участников в возрастной группе.
type AgeBracketStat struct {
	Bracket string
	Count   int64
}

const (
	BracketUpTo20 = "0~20"
	Bracket21To30 = "21~30"
	BracketOther  = "etc"
)

type Stats struct {
	Overall  *AgeStats
	Teams    []*TeamAgeStat
	Brackets []*AgeBracketStat
}
