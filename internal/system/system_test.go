package system_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/nemsgen/internal/nems"
	"github.com/san-kum/nemsgen/internal/sequence"
	"github.com/san-kum/nemsgen/internal/system"
)

func mustEntry(name string, role nems.Role, lo, hi int) *nems.Entry {
	e, err := nems.NewEntry(name, role, lo, hi, 1)
	Expect(err).NotTo(HaveOccurred())
	return e
}

var _ = Describe("System", func() {
	var (
		start = time.Date(2012, 10, 27, 0, 0, 0, 0, time.UTC)
		end   = start.Add(56 * time.Hour)
	)

	Describe("New", func() {
		It("rejects an end time before the start time", func() {
			_, err := system.New(end, start, time.Hour)
			Expect(err).To(MatchError(nems.ErrInvalid))
		})

		It("rejects an end time equal to the start time", func() {
			_, err := system.New(start, start, time.Hour)
			Expect(err).To(MatchError(nems.ErrInvalid))
		})

		It("rejects a non-positive interval", func() {
			_, err := system.New(start, end, 0)
			Expect(err).To(MatchError(nems.ErrInvalid))
		})

		It("accepts a valid window", func() {
			sys, err := system.New(start, end, 30*time.Minute)
			Expect(err).NotTo(HaveOccurred())
			Expect(sys.Duration()).To(Equal(56 * time.Hour))
		})
	})

	Describe("Register", func() {
		var sys *system.System

		BeforeEach(func() {
			var err error
			sys, err = system.New(start, end, time.Hour)
			Expect(err).NotTo(HaveOccurred())
		})

		It("keeps registration order", func() {
			Expect(sys.Register(mustEntry("cmeps", nems.RoleMED, 0, 319))).To(Succeed())
			Expect(sys.Register(mustEntry("datm", nems.RoleATM, 0, 159))).To(Succeed())

			entries := sys.Entries()
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Role).To(Equal(nems.RoleMED))
			Expect(entries[1].Role).To(Equal(nems.RoleATM))
		})

		It("overwrites in place, preserving the positional slot", func() {
			Expect(sys.Register(mustEntry("cmeps", nems.RoleMED, 0, 319))).To(Succeed())
			Expect(sys.Register(mustEntry("datm", nems.RoleATM, 0, 159))).To(Succeed())
			Expect(sys.Register(mustEntry("cdeps", nems.RoleMED, 0, 63))).To(Succeed())

			entries := sys.Entries()
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Role).To(Equal(nems.RoleMED))
			Expect(entries[0].Name).To(Equal("cdeps"))
		})
	})

	Describe("Connect", func() {
		var sys *system.System

		BeforeEach(func() {
			var err error
			sys, err = system.New(start, end, time.Hour)
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails with an unknown-role error before any entries exist", func() {
			err := sys.Connect(nems.RoleATM, nems.RoleMED, "")
			Expect(err).To(MatchError(nems.ErrUnknownRole))
		})

		It("fails when only the target is missing", func() {
			Expect(sys.Register(mustEntry("datm", nems.RoleATM, 0, 159))).To(Succeed())
			err := sys.Connect(nems.RoleATM, nems.RoleMED, "")
			Expect(err).To(MatchError(nems.ErrUnknownRole))
		})

		It("rejects self-connections", func() {
			Expect(sys.Register(mustEntry("datm", nems.RoleATM, 0, 159))).To(Succeed())
			err := sys.Connect(nems.RoleATM, nems.RoleATM, "")
			Expect(err).To(MatchError(nems.ErrInvalid))
		})

		It("defaults the remap method to redist", func() {
			Expect(sys.Register(mustEntry("datm", nems.RoleATM, 0, 159))).To(Succeed())
			Expect(sys.Register(mustEntry("cmeps", nems.RoleMED, 0, 319))).To(Succeed())
			Expect(sys.Connect(nems.RoleATM, nems.RoleMED, "")).To(Succeed())

			conns := sys.Connections()
			Expect(conns).To(HaveLen(1))
			Expect(conns[0].Method).To(Equal("redist"))
		})
	})

	Describe("BuildDocument", func() {
		var sys *system.System

		BeforeEach(func() {
			var err error
			sys, err = system.New(start, end, 30*time.Minute)
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails on an empty system", func() {
			_, err := sys.BuildDocument(sequence.Coastal, system.BuildOptions{})
			Expect(err).To(MatchError(nems.ErrInvalid))
		})

		Context("with the coastal ATM+OCN+MED setup", func() {
			BeforeEach(func() {
				med := mustEntry("cmeps", nems.RoleMED, 0, 319)
				med.Attributes.Set("ATM_model", nems.String("datm"))
				med.Attributes.Set("history_n", nems.Int(1))
				Expect(sys.Register(med)).To(Succeed())
				Expect(sys.Register(mustEntry("datm", nems.RoleATM, 0, 159))).To(Succeed())
				Expect(sys.Register(mustEntry("schism", nems.RoleOCN, 160, 319))).To(Succeed())
				Expect(sys.Connect(nems.RoleATM, nems.RoleMED, "")).To(Succeed())
				Expect(sys.Connect(nems.RoleOCN, nems.RoleMED, "")).To(Succeed())
			})

			It("is pure: identical inputs produce identical documents", func() {
				first, err := sys.BuildDocument(sequence.Coastal, system.BuildOptions{})
				Expect(err).NotTo(HaveOccurred())
				second, err := sys.BuildDocument(sequence.Coastal, system.BuildOptions{})
				Expect(err).NotTo(HaveOccurred())
				Expect(first).To(Equal(second))
			})

			It("sums processors across entries", func() {
				doc, err := sys.BuildDocument(sequence.Coastal, system.BuildOptions{})
				Expect(err).NotTo(HaveOccurred())
				Expect(doc.TotalProcessors).To(Equal(320 + 160 + 160))
			})

			It("lists components in registration order and sorted for UFS", func() {
				doc, err := sys.BuildDocument(sequence.Coastal, system.BuildOptions{})
				Expect(err).NotTo(HaveOccurred())
				Expect(doc.ComponentList()).To(Equal([]string{"MED", "ATM", "OCN"}))
				Expect(doc.SortedComponentList()).To(Equal([]string{"ATM", "MED", "OCN"}))
			})

			It("lets write-time overrides win for the keys they name", func() {
				ov := nems.NewAttributes()
				ov.Set("history_n", nems.Int(6))
				doc, err := sys.BuildDocument(sequence.Coastal, system.BuildOptions{Overrides: ov})
				Expect(err).NotTo(HaveOccurred())

				med := doc.Components[0]
				v, ok := med.Attributes.Get("history_n")
				Expect(ok).To(BeTrue())
				Expect(v.String()).To(Equal("6"))
				// overridden key keeps its original position
				Expect(med.Attributes.Keys()).To(Equal([]string{"ATM_model", "history_n"}))
				// untouched keys survive
				v, _ = med.Attributes.Get("ATM_model")
				Expect(v.String()).To(Equal("datm"))
			})

			It("does not spray overrides onto roles that neither store nor recognize them", func() {
				ov := nems.NewAttributes()
				ov.Set("history_n", nems.Int(6))
				doc, err := sys.BuildDocument(sequence.Coastal, system.BuildOptions{Overrides: ov})
				Expect(err).NotTo(HaveOccurred())

				atm := doc.Components[1]
				Expect(atm.Attributes.Has("history_n")).To(BeFalse())
			})

			It("routes restart_n and stop_n overrides into the ALLCOMP block", func() {
				ov := nems.NewAttributes()
				ov.Set("restart_n", nems.Int(24))
				ov.Set("stop_n", nems.Int(56))
				doc, err := sys.BuildDocument(sequence.Coastal, system.BuildOptions{Overrides: ov})
				Expect(err).NotTo(HaveOccurred())

				v, _ := doc.AllComp.Get("restart_n")
				Expect(v.String()).To(Equal("24"))
				v, _ = doc.AllComp.Get("stop_n")
				Expect(v.String()).To(Equal("56"))
				v, _ = doc.AllComp.Get("stop_option")
				Expect(v.String()).To(Equal("nhours"))
			})
		})
	})
})
