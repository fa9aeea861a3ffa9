package signal

// Static indicator vocabularies. All entries are lowercase; matching is
// case-insensitive. The lists are uncalibrated defaults carried over from
// field use, not tuned values.

// quickKeywords indicate tasks small enough for the two-minute rule.
var quickKeywords = []string{
	"quick", "simple", "brief", "fast", "short", "easy",
	"rapid", "swift", "instant", "moment", "second", "minute",
}

// timeIndicators are short time expressions that imply a quick task.
var timeIndicators = []string{
	"just a second", "real quick", "one minute", "couple minutes",
	"30 seconds", "quick sec", "real fast", "super quick",
}

// projectVerbs start verb+noun constructions that signal project work.
var projectVerbs = []string{
	"implement", "develop", "create", "build", "design",
	"establish", "launch", "complete", "organize", "plan",
}

// complexityIndicators are phrases that signal multi-step scope.
var complexityIndicators = []string{
	"multi-step", "multi-phase", "comprehensive", "enterprise",
	"architecture", "system", "platform", "framework",
}

// waitingVerbs and delegationVerbs anchor waiting-for detection. Stored
// as stems so fuzzy matching catches inflections (waiting, assigned, ...).
var (
	waitingVerbs    = []string{"wait", "pend", "depend", "expect", "anticipate"}
	delegationVerbs = []string{"assign", "delegate", "ask", "request", "hand"}
)

// waitingMarkers and waitingPreps form the explicit "waiting on X" /
// "blocked by X" phrase patterns.
var (
	waitingMarkers  = []string{"waiting", "pending"}
	waitingPreps    = []string{"on", "for"}
	delegationPreps = []string{"to", "for"}
)

// priorityTiers groups urgency keywords by tier; the tier name is carried
// in match metadata but all tiers emit the same signal type.
var priorityTiers = []struct {
	Tier    string
	Phrases []string
}{
	{"high", []string{"asap", "urgent", "critical", "emergency", "priority", "important", "immediate"}},
	{"medium", []string{"soon", "timely", "reasonable", "normal", "standard"}},
	{"low", []string{"someday", "eventually", "when possible", "low priority", "nice to have"}},
}

// deadlinePhrases indicate hard time bounds.
var deadlinePhrases = []string{
	"due today", "due tomorrow", "eod", "cob", "by end of week",
	"by friday", "deadline", "due date", "overdue",
}
