// ABOUTME: Bundled sample CRM data shown when no live integration is usable
// ABOUTME: Records are already canonical; every call returns a fresh copy
package demo

import (
	"slices"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/normalize"
)

var contacts = []models.Contact{
	{ID: "1", Name: "Budi Santoso", Email: "budi@majubersama.co.id", Phone: "+62 812-3456-7890", Company: "PT Maju Bersama", Position: "CEO", Status: models.ContactActive, LastContact: "20 Feb 2026"},
	{ID: "2", Name: "Siti Rahayu", Email: "siti@berkah.id", Phone: "+62 821-9876-5432", Company: "CV Berkah Jaya", Position: "Direktur", Status: models.ContactLead, LastContact: "19 Feb 2026"},
	{ID: "3", Name: "Andi Wijaya", Email: "andi@teknusa.com", Phone: "+62 813-1111-2222", Company: "PT Teknologi Nusantara", Position: "CTO", Status: models.ContactActive, LastContact: "18 Feb 2026"},
	{ID: "4", Name: "Dewi Kusuma", Email: "dewi@makmur.co.id", Phone: "+62 878-3333-4444", Company: "Toko Makmur", Position: "Manager", Status: models.ContactInactive, LastContact: "10 Feb 2026"},
	{ID: "5", Name: "Rudi Hermawan", Email: "rudi@sentosa.id", Phone: "+62 856-5555-6666", Company: "UD Sentosa", Position: "Owner", Status: models.ContactActive, LastContact: "16 Feb 2026"},
	{ID: "6", Name: "Nina Permata", Email: "nina@globalindo.com", Phone: "+62 819-7777-8888", Company: "PT Global Indo", Position: "Sales Director", Status: models.ContactLead, LastContact: "15 Feb 2026"},
	{ID: "7", Name: "Hendra Gunawan", Email: "hendra@cahaya.id", Phone: "+62 811-9999-0000", Company: "CV Cahaya Abadi", Position: "CFO", Status: models.ContactActive, LastContact: "14 Feb 2026"},
	{ID: "8", Name: "Rina Susanti", Email: "rina@prima.co.id", Phone: "+62 822-1234-5678", Company: "PT Prima Sejahtera", Position: "HR Manager", Status: models.ContactLead, LastContact: "12 Feb 2026"},
}

// Deal values are in Rupiah; ValueFmt is filled in by Deals.
var deals = []models.Deal{
	{ID: "1", Title: "Implementasi ERP", Company: "PT Maju Bersama", Value: 450_000_000, Stage: models.StageNegotiation, Owner: "BS", Probability: 75, CloseDate: "28 Feb 2026"},
	{ID: "2", Title: "Langganan SaaS Tahunan", Company: "CV Berkah Jaya", Value: 120_000_000, Stage: models.StageProposal, Owner: "SR", Probability: 55, CloseDate: "15 Mar 2026"},
	{ID: "3", Title: "Integrasi API", Company: "PT Teknologi Nusantara", Value: 85_000_000, Stage: models.StageQualified, Owner: "AW", Probability: 40, CloseDate: "30 Mar 2026"},
	{ID: "4", Title: "Lisensi Enterprise", Company: "UD Sentosa", Value: 200_000_000, Stage: models.StageLead, Owner: "RH", Probability: 20, CloseDate: "30 Apr 2026"},
	{ID: "5", Title: "Proyek Digitalisasi", Company: "PT Global Indo", Value: 750_000_000, Stage: models.StageProposal, Owner: "NP", Probability: 60, CloseDate: "20 Mar 2026"},
	{ID: "6", Title: "Paket Maintenance", Company: "CV Cahaya Abadi", Value: 65_000_000, Stage: models.StageClosedWon, Owner: "HG", Probability: 100, CloseDate: "10 Feb 2026"},
	{ID: "7", Title: "Konsultasi IT", Company: "PT Prima Sejahtera", Value: 35_000_000, Stage: models.StageLead, Owner: "RS", Probability: 15, CloseDate: "15 Apr 2026"},
	{ID: "8", Title: "Upgrade Server", Company: "Toko Makmur", Value: 180_000_000, Stage: models.StageNegotiation, Owner: "DK", Probability: 80, CloseDate: "5 Mar 2026"},
}

var activities = []models.Activity{
	{ID: "1", Type: models.ActivityCall, Title: "Follow-up proposal ERP", Description: "Mendiskusikan timeline implementasi dan kebutuhan modul tambahan", Contact: "Budi Santoso", Company: "PT Maju Bersama", Date: "20 Feb 2026", Time: "10:30", Completed: true},
	{ID: "2", Type: models.ActivityMeeting, Title: "Demo product Teknologi Nusantara", Description: "Presentasi fitur baru dan roadmap Q2 2026", Contact: "Andi Wijaya", Company: "PT Teknologi Nusantara", Date: "20 Feb 2026", Time: "14:00", Completed: false},
	{ID: "3", Type: models.ActivityEmail, Title: "Kirim penawaran harga SaaS", Description: "Mengirimkan proposal harga untuk paket enterprise 50 user", Contact: "Siti Rahayu", Company: "CV Berkah Jaya", Date: "19 Feb 2026", Time: "09:15", Completed: true},
	{ID: "4", Type: models.ActivityTask, Title: "Update CRM data kontak", Description: "Memperbarui informasi kontak dari hasil meeting minggu lalu", Contact: "Nina Permata", Company: "PT Global Indo", Date: "19 Feb 2026", Time: "16:00", Completed: true},
	{ID: "5", Type: models.ActivityNote, Title: "Catatan hasil negosiasi", Description: "Klien meminta diskon 10% untuk kontrak 2 tahun. Perlu approval manager.", Contact: "Rudi Hermawan", Company: "UD Sentosa", Date: "18 Feb 2026", Time: "11:45", Completed: true},
	{ID: "6", Type: models.ActivityMeeting, Title: "Kick-off project upgrade server", Description: "Rapat awal dengan tim teknis dan manajemen klien untuk pembahasan scope", Contact: "Dewi Kusuma", Company: "Toko Makmur", Date: "18 Feb 2026", Time: "13:30", Completed: false},
	{ID: "7", Type: models.ActivityCall, Title: "Panggilan perkenalan lead baru", Description: "Menjelaskan solusi CRM kepada calon klien dari referral Andi", Contact: "Rina Susanti", Company: "PT Prima Sejahtera", Date: "17 Feb 2026", Time: "15:00", Completed: true},
	{ID: "8", Type: models.ActivityTask, Title: "Persiapkan kontrak paket maintenance", Description: "Menyiapkan dokumen kontrak dan SLA untuk CV Cahaya Abadi", Contact: "Hendra Gunawan", Company: "CV Cahaya Abadi", Date: "17 Feb 2026", Time: "17:00", Completed: false},
}

var companies = []models.Company{
	{ID: "1", Name: "PT Maju Bersama", Industry: "Manufaktur", Website: "majubersama.co.id", Phone: "+62 21-555-0001", Address: "Jakarta Selatan", ContactCount: 5, DealCount: 3, Revenue: 1_200_000_000, Status: models.CompanyActive, CreatedAt: "10 Jan 2026"},
	{ID: "2", Name: "CV Berkah Jaya", Industry: "Retail", Website: "berkah.id", Phone: "+62 21-555-0002", Address: "Bandung", ContactCount: 3, DealCount: 2, Revenue: 450_000_000, Status: models.CompanyActive, CreatedAt: "15 Jan 2026"},
	{ID: "3", Name: "PT Teknologi Nusantara", Industry: "Teknologi", Website: "teknusa.com", Phone: "+62 21-555-0003", Address: "Jakarta Pusat", ContactCount: 8, DealCount: 4, Revenue: 2_100_000_000, Status: models.CompanyActive, CreatedAt: "5 Des 2025"},
	{ID: "4", Name: "Toko Makmur", Industry: "Retail", Website: "makmur.co.id", Phone: "+62 21-555-0004", Address: "Surabaya", ContactCount: 2, DealCount: 1, Revenue: 180_000_000, Status: models.CompanyInactive, CreatedAt: "20 Nov 2025"},
	{ID: "5", Name: "UD Sentosa", Industry: "Distribusi", Website: "sentosa.id", Phone: "+62 21-555-0005", Address: "Semarang", ContactCount: 4, DealCount: 2, Revenue: 650_000_000, Status: models.CompanyActive, CreatedAt: "1 Feb 2026"},
	{ID: "6", Name: "PT Global Indo", Industry: "Konsultan", Website: "globalindo.com", Phone: "+62 21-555-0006", Address: "Jakarta Barat", ContactCount: 6, DealCount: 3, Revenue: 1_800_000_000, Status: models.CompanyProspect, CreatedAt: "12 Feb 2026"},
	{ID: "7", Name: "CV Cahaya Abadi", Industry: "Manufaktur", Website: "cahaya.id", Phone: "+62 21-555-0007", Address: "Yogyakarta", ContactCount: 3, DealCount: 1, Revenue: 320_000_000, Status: models.CompanyActive, CreatedAt: "28 Jan 2026"},
	{ID: "8", Name: "PT Prima Sejahtera", Industry: "Jasa", Website: "prima.co.id", Phone: "+62 21-555-0008", Address: "Medan", ContactCount: 4, DealCount: 2, Revenue: 580_000_000, Status: models.CompanyProspect, CreatedAt: "18 Feb 2026"},
}

func Contacts() []models.Contact {
	return slices.Clone(contacts)
}

func Deals() []models.Deal {
	out := slices.Clone(deals)
	for i := range out {
		out[i].ValueFmt = normalize.FormatRupiah(out[i].Value)
	}
	return out
}

func Activities() []models.Activity {
	return slices.Clone(activities)
}

func Companies() []models.Company {
	out := slices.Clone(companies)
	for i := range out {
		out[i].RevenueFmt = normalize.FormatRupiah(out[i].Revenue)
	}
	return out
}
