package categorize

import "regexp"

// Domain tables are checked before subject patterns: domains are much harder
// to spoof than subject lines, so the ordering here is load-bearing.

var newsletterDomains = stringSet(
	"mailchimp.com",
	"sendgrid.net",
	"sendgrid.com",
	"constantcontact.com",
	"mailgun.com",
	"mailgun.net",
	"sparkpostmail.com",
	"amazonses.com",
	"postmarkapp.com",
	"campaign-archive.com",
	"list-manage.com",
	"email.mg",
	"substack.com",
	"beehiiv.com",
	"convertkit.com",
	"buttondown.email",
	"revue.email",
	"ghost.io",
	"hubspot.com",
	"hubspotemail.net",
	"klaviyo.com",
	"drip.com",
	"sendinblue.com",
	"brevo.com",
	"getresponse.com",
	"aweber.com",
	"activecampaign.com",
	"mailerlite.com",
	"e.medium.com",
	"medium.com",
	"quora.com",
)

var socialDomains = stringSet(
	"linkedin.com",
	"linkedinmail.com",
	"facebookmail.com",
	"facebook.com",
	"twitter.com",
	"x.com",
	"instagram.com",
	"tiktok.com",
	"pinterest.com",
	"reddit.com",
	"redditmail.com",
	"tumblr.com",
	"snapchat.com",
	"discord.com",
	"discordapp.com",
	"slack.com",
	"slackbot.com",
	"youtube.com",
	"github.com",
	"gitlab.com",
	"stackoverflow.email",
	"twitch.tv",
	"mastodon.social",
	"threads.net",
	"whatsapp.com",
	"telegram.org",
)

var receiptDomains = stringSet(
	"amazon.com",
	"amazon.co.uk",
	"ebay.com",
	"shopify.com",
	"stripe.com",
	"paypal.com",
	"squareup.com",
	"venmo.com",
	"doordash.com",
	"ubereats.com",
	"uber.com",
	"lyft.com",
	"grubhub.com",
	"instacart.com",
	"walmart.com",
	"target.com",
	"bestbuy.com",
	"apple.com",
	"google.com",
	"steamcommunity.com",
	"steampowered.com",
	"playstation.com",
	"xbox.com",
	"airbnb.com",
	"booking.com",
	"expedia.com",
	"etsy.com",
)

var newsletterSubjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bunsubscribe\b`),
	regexp.MustCompile(`(?i)\bnewsletter\b`),
	regexp.MustCompile(`(?i)\bdigest\b`),
	regexp.MustCompile(`(?i)\bweekly\b`),
	regexp.MustCompile(`(?i)\bdaily\b`),
	regexp.MustCompile(`(?i)\bmonthly\b`),
	regexp.MustCompile(`(?i)\bround\s*up\b`),
	regexp.MustCompile(`(?i)\btop\s+stories\b`),
	regexp.MustCompile(`(?i)\byour\s+\w+\s+update\b`),
}

var socialSubjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bliked\s+your\b`),
	regexp.MustCompile(`(?i)\bmentioned\s+you\b`),
	regexp.MustCompile(`(?i)\bsent\s+you\s+a\s+message\b`),
	regexp.MustCompile(`(?i)\bconnection\s+request\b`),
	regexp.MustCompile(`(?i)\bfollowed\s+you\b`),
	regexp.MustCompile(`(?i)\bfriend\s+request\b`),
	regexp.MustCompile(`(?i)\btagged\s+you\b`),
	regexp.MustCompile(`(?i)\bcommented\s+on\b`),
	regexp.MustCompile(`(?i)\breacted\s+to\b`),
	regexp.MustCompile(`(?i)\binvited\s+you\b`),
	regexp.MustCompile(`(?i)\bnew\s+follower\b`),
	regexp.MustCompile(`(?i)\bshared\s+a\s+post\b`),
	regexp.MustCompile(`(?i)\bjoin\s+.+\s+on\b`),
}

var receiptSubjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\breceipt\b`),
	regexp.MustCompile(`(?i)\border\s+confirm`),
	regexp.MustCompile(`(?i)\byour\s+order\b`),
	regexp.MustCompile(`(?i)\bshipped\b`),
	regexp.MustCompile(`(?i)\bdelivered\b`),
	regexp.MustCompile(`(?i)\binvoice\b`),
	regexp.MustCompile(`(?i)\bpayment\s+(received|confirmed|processed)\b`),
	regexp.MustCompile(`(?i)\btransaction\b`),
	regexp.MustCompile(`(?i)\bpurchase\b`),
	regexp.MustCompile(`(?i)\bsubscription\s+(renewed|confirmed|receipt)\b`),
	regexp.MustCompile(`(?i)\brefund\b`),
	regexp.MustCompile(`(?i)\btracking\s+(number|update)\b`),
}

// Generic bulk-sender shapes in the From field; the weakest signal, checked last.
var newsletterSenderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bnewsletter\b`),
	regexp.MustCompile(`(?i)\bnoreply\b`),
	regexp.MustCompile(`(?i)\bno-reply\b`),
	regexp.MustCompile(`(?i)\bdo-not-reply\b`),
	regexp.MustCompile(`(?i)\bdo_not_reply\b`),
	regexp.MustCompile(`(?i)\bmailer\b`),
	regexp.MustCompile(`(?i)\bnotifications?\b`),
	regexp.MustCompile(`(?i)\bupdates?\b`),
	regexp.MustCompile(`(?i)\bdigest\b`),
	regexp.MustCompile(`(?i)\binfo@`),
}

// socialPlatformRules maps domain substrings to platform names; checked in
// order, first match wins.
var socialPlatformRules = []struct {
	keyword  string
	platform string
}{
	{"linkedin", "LinkedIn"},
	{"twitter", "Twitter/X"},
	{"x.com", "Twitter/X"},
	{"facebook", "Facebook"},
	{"instagram", "Instagram"},
	{"github", "GitHub"},
	{"discord", "Discord"},
	{"reddit", "Reddit"},
	{"youtube", "YouTube"},
}

func stringSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
