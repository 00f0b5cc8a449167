package queue_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/queue"
)

var _ = Describe("ParseMessage", func() {
	fullEntry := func() redis.XMessage {
		return redis.XMessage{
			ID: "1700000000000-0",
			Values: map[string]any{
				"invitation_id": "123456789",
				"email":         "grace@example.com",
				"token":         "tok",
				"client_name":   "Acme",
				"inviter_name":  "Ada",
				"role":          "participant",
				"attempt":       "2",
				"trace_id":      "4bf92f3577b34da6a3ce929d0e0e4736",
			},
		}
	}

	It("decodes a full entry", func() {
		msg, err := queue.ParseMessage(fullEntry())

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ID).To(Equal("1700000000000-0"))
		Expect(msg.InvitationID).To(Equal(int64(123456789)))
		Expect(msg.Email).To(Equal("grace@example.com"))
		Expect(msg.Token).To(Equal("tok"))
		Expect(msg.ClientName).To(Equal("Acme"))
		Expect(msg.InviterName).To(Equal("Ada"))
		Expect(msg.Role).To(Equal(model.RoleParticipant))
		Expect(msg.Attempt).To(Equal(2))
		Expect(msg.TraceID).To(Equal("4bf92f3577b34da6a3ce929d0e0e4736"))
	})

	It("defaults a missing attempt to 1", func() {
		entry := fullEntry()
		delete(entry.Values, "attempt")

		msg, err := queue.ParseMessage(entry)

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Attempt).To(Equal(1))
	})

	It("tolerates missing optional fields", func() {
		entry := redis.XMessage{
			ID: "1700000000000-0",
			Values: map[string]any{
				"invitation_id": "123456789",
				"email":         "grace@example.com",
				"token":         "tok",
			},
		}

		msg, err := queue.ParseMessage(entry)

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ClientName).To(BeEmpty())
		Expect(msg.InviterName).To(BeEmpty())
		Expect(msg.TraceID).To(BeEmpty())
	})

	It("rejects an entry without an invitation id", func() {
		entry := fullEntry()
		delete(entry.Values, "invitation_id")

		_, err := queue.ParseMessage(entry)

		Expect(err).To(HaveOccurred())
	})

	It("rejects a malformed invitation id", func() {
		entry := fullEntry()
		entry.Values["invitation_id"] = "not-a-number"

		_, err := queue.ParseMessage(entry)

		Expect(err).To(HaveOccurred())
	})

	It("rejects an entry without an email", func() {
		entry := fullEntry()
		delete(entry.Values, "email")

		_, err := queue.ParseMessage(entry)

		Expect(err).To(HaveOccurred())
	})
})
