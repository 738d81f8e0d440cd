package model

type Meal struct {
	ID       string   `json:"id"`
	Time     string   `json:"time"`
	Name     string   `json:"name"`
	Foods    []string `json:"foods"`
	Calories int      `json:"calories"`
}

type Workout struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Duration       string   `json:"duration"`
	Difficulty     string   `json:"difficulty"`
	Calories       string   `json:"calories"`
	Exercises      []string `json:"exercises"`
	Image          string   `json:"image"`
	Enrolled       bool     `json:"enrolled"`
	CompletedCount int      `json:"completedCount"`
}

type Community struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Members     int         `json:"members"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Joined      bool        `json:"joined"`
	Challenges  []Challenge `json:"challenges"`
}

type Challenge struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Rewards      string `json:"rewards"`
	Participants int    `json:"participants"`
	EndDate      string `json:"endDate"`
	Progress     int    `json:"progress"`
	Enrolled     bool   `json:"enrolled"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Total       int    `json:"total"`
	Completed   bool   `json:"completed"`
}

// DailyStat is one day of the rolling weekly calorie window. The window is
// fixed at seed time; only the entry matching today's date is rewritten.
type DailyStat struct {
	Day      string `json:"day"`
	Date     string `json:"date"`
	Calories int    `json:"calories"`
	Target   int    `json:"target"`
}

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Avatar         string `json:"avatar"`
	Bio            string `json:"bio"`
	MembershipType string `json:"membershipType"`
	IsAdmin        bool   `json:"isAdmin"`
}

type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
