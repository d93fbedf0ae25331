package auth_test

import (
	"strings"

	"github.com/tvintergoller/keep-informed/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Password Hashing", func() {
	Describe("HashPassword", func() {
		It("should produce a salt:hash credential in hex", func() {
			credential, err := auth.HashPassword("secret")
			Expect(err).NotTo(HaveOccurred())

			parts := strings.Split(credential, ":")
			Expect(parts).To(HaveLen(2))
			// 16 byte salt and 32 byte derived key, hex encoded
			Expect(parts[0]).To(HaveLen(32))
			Expect(parts[1]).To(HaveLen(64))
			Expect(parts[0]).To(MatchRegexp("^[0-9a-f]+$"))
			Expect(parts[1]).To(MatchRegexp("^[0-9a-f]+$"))
		})

		It("should salt each credential independently", func() {
			first, err := auth.HashPassword("secret")
			Expect(err).NotTo(HaveOccurred())
			second, err := auth.HashPassword("secret")
			Expect(err).NotTo(HaveOccurred())

			Expect(first).NotTo(Equal(second))

			// both still verify against the original password
			Expect(auth.VerifyPassword("secret", first)).To(BeTrue())
			Expect(auth.VerifyPassword("secret", second)).To(BeTrue())
		})
	})

	Describe("VerifyPassword", func() {
		It("should accept the password the credential was derived from", func() {
			credential, err := auth.HashPassword("correct horse battery staple")
			Expect(err).NotTo(HaveOccurred())
			Expect(auth.VerifyPassword("correct horse battery staple", credential)).To(BeTrue())
		})

		It("should reject any other password", func() {
			credential, err := auth.HashPassword("secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(auth.VerifyPassword("Secret", credential)).To(BeFalse())
			Expect(auth.VerifyPassword("secret ", credential)).To(BeFalse())
			Expect(auth.VerifyPassword("", credential)).To(BeFalse())
		})

		Context("with a malformed stored credential", func() {
			It("should fail closed without panicking", func() {
				Expect(auth.VerifyPassword("secret", "")).To(BeFalse())
				Expect(auth.VerifyPassword("secret", "no-colon-at-all")).To(BeFalse())
				Expect(auth.VerifyPassword("secret", "too:many:colons")).To(BeFalse())
				Expect(auth.VerifyPassword("secret", "nothex:deadbeef")).To(BeFalse())
				Expect(auth.VerifyPassword("secret", ":")).To(BeFalse())
			})
		})
	})
})
