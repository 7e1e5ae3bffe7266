package rules

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/redact"
	"github.com/pivotal-cf/cred-audit/snapshot"
)

var plaintextSchemes = map[string]bool{
	"http":    true,
	"ftp":     true,
	"telnet":  true,
	"ws":      true,
	"redis":   true,
	"amqp":    true,
	"mqtt":    true,
	"ldap":    true,
	"smtp":    true,
	"mongodb": true,
}

var sslDisabledParams = map[string][]string{
	"sslmode": {"disable", "allow", "prefer"},
	"ssl":     {"false", "0"},
	"tls":     {"false", "0"},
	"useSSL":  {"false"},
}

// TransmissionRule flags endpoints that are reached without transport
// security. Credentials inside such a URL travel in the clear, which is
// also reported as a leak.
type TransmissionRule struct{}

func (TransmissionRule) Name() string { return "plaintext-transmission" }

func (r TransmissionRule) Evaluate(logger lager.Logger, snap snapshot.Snapshot) ([]models.Detection, error) {
	var detections []models.Detection

	for _, env := range snap.Environments {
		for _, v := range env.Variables {
			if !strings.Contains(v.Value, "://") {
				continue
			}

			u, err := url.Parse(strings.TrimSpace(v.Value))
			if err != nil || u.Host == "" || isLocalHost(u.Hostname()) {
				continue
			}

			reason, insecure := insecureTransport(u)
			if !insecure {
				continue
			}

			_, hasPassword := u.User.Password()

			severity := models.SeverityMedium
			if hasPassword {
				severity = models.SeverityHigh
			}
			severity = escalateForProduction(env, severity)

			detection := models.Detection{
				FindingType:    models.FindingTypeInsecureTransmission,
				Severity:       severity,
				EnvironmentID:  env.ID,
				VariableName:   v.Key,
				Location:       location(env, v.Key),
				Description:    fmt.Sprintf("%q points at %s://%s %s", v.Key, u.Scheme, u.Hostname(), reason),
				Recommendation: "Use the TLS variant of this protocol and require certificate verification",
			}

			if hasPassword {
				password, _ := u.User.Password()
				detection.Leak = &models.LeakSignal{
					ProjectID:     snap.ProjectID,
					DetectionType: models.DetectionTypeCredentialLeak,
					Severity:      severity,
					Source:        "secret_store",
					Key:           fmt.Sprintf("plaintext-url:%s:%s", env.ID, v.Key),
					Description:   fmt.Sprintf("Credentials for %s are sent over an unencrypted connection", u.Hostname()),
					Sample:        redact.Mask(password),
					Metadata: map[string]interface{}{
						"environment": env.Name,
						"variable":    v.Key,
						"scheme":      u.Scheme,
					},
				}
			}

			detections = append(detections, detection)
		}
	}

	return detections, nil
}

func insecureTransport(u *url.URL) (string, bool) {
	scheme := strings.ToLower(u.Scheme)
	if plaintextSchemes[scheme] {
		return "without TLS", true
	}

	query := u.Query()
	for param, insecureValues := range sslDisabledParams {
		value := query.Get(param)
		for _, insecure := range insecureValues {
			if strings.EqualFold(value, insecure) {
				return fmt.Sprintf("with %s=%s", param, value), true
			}
		}
	}

	return "", false
}

func isLocalHost(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
