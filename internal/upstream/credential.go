package upstream

type CredentialKind int

const (
	CredentialNone CredentialKind = iota
	CredentialToken
	CredentialSSO
)

// SSOIdentity is the non-token credential carried by single-sign-on
// sessions: a username plus the project codes the PI oversees.
type SSOIdentity struct {
	Username     string   `json:"username"`
	ProjectCodes []string `json:"projectCodes"`
}

// Credential is the tagged auth value attached to every upstream request.
// Exactly one variant is set; the zero value means "no credential".
type Credential struct {
	kind  CredentialKind
	token string
	sso   SSOIdentity
}

func TokenCredential(token string) Credential {
	return Credential{kind: CredentialToken, token: token}
}

func SSOCredential(username string, projectCodes []string) Credential {
	return Credential{
		kind: CredentialSSO,
		sso:  SSOIdentity{Username: username, ProjectCodes: projectCodes},
	}
}

func (c Credential) Kind() CredentialKind { return c.kind }

func (c Credential) Token() string { return c.token }

func (c Credential) Identity() SSOIdentity { return c.sso }

func (c Credential) IsZero() bool { return c.kind == CredentialNone }

// CacheKey distinguishes credentials when deduplicating in-flight fetches.
func (c Credential) CacheKey() string {
	switch c.kind {
	case CredentialToken:
		return "token:" + c.token
	case CredentialSSO:
		return "sso:" + c.sso.Username
	default:
		return "anon"
	}
}
