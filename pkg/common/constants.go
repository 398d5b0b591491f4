package common

const (
	// JobTypeScreening posts the momentum scalping digest.
	JobTypeScreening = "screening"
	// JobTypeWarrant posts the active warrant list.
	JobTypeWarrant = "warrant"

	DefaultWarrantSuffix = "-W"

	TopRankingSize   = 10
	TopRecommendSize = 5
)
