package policy

import (
	"strings"

	"github.com/Pavua/krab/pkg/models"
)

// profileCues maps payload keywords to task profiles, checked in order.
// The first matching profile wins; everything else is plain chat.
var profileCues = []struct {
	profile models.TaskProfile
	cues    []string
}{
	{models.ProfileSecurity, []string{"cve-", "vulnerab", "exploit", "security audit", "pentest", "injection"}},
	{models.ProfileInfra, []string{"terraform", "kubernetes", "k8s", "ansible", "deploy", "nginx", "systemd", "dockerfile"}},
	{models.ProfileReview, []string{"review this", "code review", "ревью", "look over this diff", "check my pr"}},
	{models.ProfileReasoning, []string{"prove", "step by step", "derive", "formally", "докажи"}},
}

// ClassifyProfile assigns a coarse task profile from message text.
func ClassifyProfile(payload string) models.TaskProfile {
	lower := strings.ToLower(payload)
	for _, c := range profileCues {
		for _, cue := range c.cues {
			if strings.Contains(lower, cue) {
				return c.profile
			}
		}
	}
	return models.ProfileChat
}
