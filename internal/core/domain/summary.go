package domain

// RepositorySummary counts repositories owned by a subject.
type RepositorySummary struct {
	Subject  string `json:"subject"`
	Total    int    `json:"total"`
	Forks    int    `json:"forks"`
	NonForks int    `json:"non_forks"`
	Public   int    `json:"public"`
	Private  int    `json:"private"`
	Archived int    `json:"archived"`
	Active   int    `json:"active"`
}

// Summarize counts the repositories in raws owned by owner.
// An empty owner counts every repository.
func Summarize(owner string, raws []RawRepository) RepositorySummary {
	s := RepositorySummary{Subject: owner}
	for _, r := range raws {
		if owner != "" && r.OwnerLogin() != owner {
			continue
		}
		s.Total++
		if r.Fork {
			s.Forks++
		} else {
			s.NonForks++
		}
		if r.Private {
			s.Private++
		} else {
			s.Public++
		}
		if r.Archived {
			s.Archived++
		} else {
			s.Active++
		}
	}
	return s
}
