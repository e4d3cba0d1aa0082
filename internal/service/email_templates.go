package service

import (
	"fmt"
	"strings"
)

func achievementEmailTemplate(badges []EarnedBadge, achievementsURL, appName string) (string, string) {
	subject := fmt.Sprintf("You earned a new badge on %s!", appName)
	if len(badges) > 1 {
		subject = fmt.Sprintf("You earned %d new badges on %s!", len(badges), appName)
	}

	var list strings.Builder
	for _, b := range badges {
		fmt.Fprintf(&list, "%s %s: %s\n", b.Badge.Icon, b.Badge.Name, b.Badge.Description)
	}

	body := fmt.Sprintf(`Nice work! You just unlocked:

%s
See all your badges and what's next:
%s

Keep the streak going.

Best,
The %s Team`, list.String(), achievementsURL, appName)

	return subject, body
}
