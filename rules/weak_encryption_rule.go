package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/sniff/matchers"
	"github.com/pivotal-cf/cred-audit/snapshot"
)

const cryptMD5Pattern = `\$1\$[A-Z0-9./]{1,16}\$[A-Z0-9./]{22}`
const cryptSHA256Pattern = `\$5\$[A-Z0-9./]{1,16}\$[A-Z0-9./]{43}`
const cryptSHA512Pattern = `\$6\$[A-Z0-9./]{1,16}\$[A-Z0-9./]{86}`
const bareMD5Pattern = `^[A-F0-9]{32}$`
const bareSHA1Pattern = `^[A-F0-9]{40}$`

var weakAlgorithms = []string{"DES", "3DES", "RC4", "MD5", "SHA1", "ECB", "BLOWFISH"}

const minEncryptionKeyLength = 16

// WeakEncryptionRule flags stored password hashes and encryption settings
// that are too weak to protect what they guard.
type WeakEncryptionRule struct {
	hashes    matchers.Matcher
	unsalted  matchers.Matcher
	passwords matchers.Matcher
}

func NewWeakEncryptionRule() WeakEncryptionRule {
	return WeakEncryptionRule{
		hashes: matchers.UpcasedMulti(
			matchers.Filter(matchers.Format(cryptMD5Pattern), "$1$"),
			matchers.Filter(matchers.Format(cryptSHA256Pattern), "$5$"),
			matchers.Filter(matchers.Format(cryptSHA512Pattern), "$6$"),
		),
		unsalted: matchers.UpcasedMulti(
			matchers.Format(bareMD5Pattern),
			matchers.Format(bareSHA1Pattern),
		),
		passwords: matchers.UpcasedMulti(
			matchers.Substring("PASSWORD"),
			matchers.Substring("PASSWD"),
			matchers.Substring("HASH"),
		),
	}
}

func (WeakEncryptionRule) Name() string { return "weak-encryption" }

func (r WeakEncryptionRule) Evaluate(logger lager.Logger, snap snapshot.Snapshot) ([]models.Detection, error) {
	var detections []models.Detection

	for _, env := range snap.Environments {
		for _, v := range env.Variables {
			description, severity, weak := r.classify(v)
			if !weak {
				continue
			}

			detections = append(detections, models.Detection{
				FindingType:    models.FindingTypeWeakEncryption,
				Severity:       escalateForProduction(env, severity),
				EnvironmentID:  env.ID,
				VariableName:   v.Key,
				Location:       location(env, v.Key),
				Description:    description,
				Recommendation: "Use a modern algorithm (AES-GCM, bcrypt, scrypt or argon2) with a key of at least 128 bits",
			})
		}
	}

	return detections, nil
}

func (r WeakEncryptionRule) classify(v snapshot.Variable) (string, models.Severity, bool) {
	value := []byte(v.Value)
	key := []byte(v.Key)

	if match, _, _ := r.hashes.Match(value); match {
		return fmt.Sprintf("%q holds a crypt(3) password hash that can be attacked offline", v.Key), models.SeverityMedium, true
	}

	if keyMatch, _, _ := r.passwords.Match(key); keyMatch {
		if match, _, _ := r.unsalted.Match(value); match {
			return fmt.Sprintf("%q holds an unsalted MD5 or SHA-1 digest", v.Key), models.SeverityHigh, true
		}
	}

	upcasedKey := strings.ToUpper(v.Key)
	if strings.Contains(upcasedKey, "ALGORITHM") || strings.Contains(upcasedKey, "CIPHER") {
		upcasedValue := strings.ToUpper(strings.TrimSpace(v.Value))
		for _, alg := range weakAlgorithms {
			if upcasedValue == alg || strings.Contains(upcasedValue, "-"+alg) || strings.HasPrefix(upcasedValue, alg+"-") {
				return fmt.Sprintf("%q selects the weak algorithm %s", v.Key, alg), models.SeverityMedium, true
			}
		}
	}

	if strings.Contains(upcasedKey, "ENCRYPTION_KEY") && !isEncryptedReference(v.Value) {
		if n := utf8.RuneCountInString(v.Value); n > 0 && n < minEncryptionKeyLength {
			return fmt.Sprintf("%q is shorter than %d characters", v.Key, minEncryptionKeyLength), models.SeverityHigh, true
		}
	}

	return "", "", false
}
