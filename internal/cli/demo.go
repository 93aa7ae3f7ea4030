package cli

import (
	"time"

	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

// Demo data shown when the API cannot be reached. It is never written to
// the store.

func demoTime(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func demoDate(s string) *time.Time {
	t := demoTime(s + "T00:00")
	return &t
}

func str(s string) *string { return &s }

func demoReports() []models.Report {
	return []models.Report{
		{
			ID:          1,
			Title:       "Laporan Pengawasan Keuangan Q1 2024",
			Description: str("Pemeriksaan keuangan triwulan pertama tahun 2024 mencakup evaluasi proses akuntansi, pengendalian internal, dan kepatuhan terhadap regulasi keuangan."),
			ReportType:  models.ReportTypeOversight,
			Status:      models.ReportStatusCompleted,
			FileURL:     str("/files/laporan-q1-2024.pdf"),
			FileName:    str("laporan-q1-2024.pdf"),
			UploadedBy:  "Ahmad Wijaya",
			CreatedAt:   demoTime("2024-03-15T09:30"),
			UpdatedAt:   demoTime("2024-03-20T14:45"),
		},
		{
			ID:          2,
			Title:       "Audit Internal Sistem IT",
			Description: str("Evaluasi menyeluruh terhadap keamanan sistem informasi, infrastruktur IT, dan prosedur backup data organisasi."),
			ReportType:  models.ReportTypeAudit,
			Status:      models.ReportStatusInProgress,
			UploadedBy:  "Sari Indah",
			CreatedAt:   demoTime("2024-03-10T11:15"),
			UpdatedAt:   demoTime("2024-03-18T16:20"),
		},
		{
			ID:          3,
			Title:       "Review Proses Pengadaan Barang",
			Description: str("Tinjauan terhadap prosedur pengadaan barang dan jasa untuk memastikan transparansi dan efisiensi dalam proses procurement."),
			ReportType:  models.ReportTypeReview,
			Status:      models.ReportStatusPending,
			UploadedBy:  "Budi Santoso",
			CreatedAt:   demoTime("2024-03-25T08:45"),
			UpdatedAt:   demoTime("2024-03-25T08:45"),
		},
		{
			ID:         4,
			Title:      "Pengawasan Implementasi Kebijakan SDM",
			ReportType: models.ReportTypeOversight,
			Status:     models.ReportStatusCompleted,
			FileURL:    str("/files/pengawasan-sdm.pdf"),
			FileName:   str("pengawasan-sdm.pdf"),
			UploadedBy: "Lisa Pratiwi",
			CreatedAt:  demoTime("2024-02-28T13:20"),
			UpdatedAt:  demoTime("2024-03-05T10:30"),
		},
		{
			ID:          5,
			Title:       "Audit Operasional Divisi Marketing",
			Description: str("Pemeriksaan efektivitas operasional dan strategi pemasaran untuk mengidentifikasi peluang peningkatan kinerja."),
			ReportType:  models.ReportTypeAudit,
			Status:      models.ReportStatusInProgress,
			UploadedBy:  "Eko Prasetyo",
			CreatedAt:   demoTime("2024-03-12T14:10"),
			UpdatedAt:   demoTime("2024-03-22T09:15"),
		},
	}
}

func demoFollowUpActions() []models.FollowUpAction {
	return []models.FollowUpAction{
		{
			ID:                1,
			ReportID:          1,
			ActionDescription: "Implementasi rekomendasi sistem akuntansi baru untuk meningkatkan transparansi dan akurasi pelaporan keuangan",
			AssignedTo:        str("Tim IT"),
			Status:            models.FollowUpStatusInProgress,
			DueDate:           demoDate("2024-04-15"),
			Notes:             str("Progress 60% - sedang dalam tahap pengembangan modul akuntansi. Diperlukan koordinasi dengan divisi keuangan."),
			CreatedAt:         demoTime("2024-03-20T09:30"),
			UpdatedAt:         demoTime("2024-03-28T14:15"),
		},
		{
			ID:                2,
			ReportID:          1,
			ActionDescription: "Pelatihan staff keuangan untuk sistem akuntansi baru",
			AssignedTo:        str("HRD"),
			Status:            models.FollowUpStatusNotStarted,
			DueDate:           demoDate("2024-05-01"),
			CreatedAt:         demoTime("2024-03-20T09:45"),
			UpdatedAt:         demoTime("2024-03-20T09:45"),
		},
		{
			ID:                3,
			ReportID:          2,
			ActionDescription: "Upgrade keamanan server database dan implementasi backup otomatis",
			AssignedTo:        str("Tim Keamanan"),
			Status:            models.FollowUpStatusCompleted,
			DueDate:           demoDate("2024-04-01"),
			CompletionDate:    demoDate("2024-03-28"),
			Notes:             str("Keamanan database telah ditingkatkan dengan enkripsi tambahan dan sistem backup otomatis setiap hari."),
			CreatedAt:         demoTime("2024-03-18T11:20"),
			UpdatedAt:         demoTime("2024-03-28T16:45"),
		},
		{
			ID:                4,
			ReportID:          3,
			ActionDescription: "Revisi SOP pengadaan barang untuk meningkatkan efisiensi dan transparansi",
			AssignedTo:        str("Tim Procurement"),
			Status:            models.FollowUpStatusInProgress,
			DueDate:           demoDate("2024-04-20"),
			Notes:             str("Draft SOP baru sedang dalam review oleh manajemen. Diperkirakan selesai minggu depan."),
			CreatedAt:         demoTime("2024-03-25T08:15"),
			UpdatedAt:         demoTime("2024-03-29T10:30"),
		},
		{
			ID:                5,
			ReportID:          2,
			ActionDescription: "Pelatihan cybersecurity untuk seluruh karyawan",
			AssignedTo:        str("Tim IT & HRD"),
			Status:            models.FollowUpStatusNotStarted,
			DueDate:           demoDate("2024-04-30"),
			Notes:             str("Menunggu persetujuan budget untuk mengundang trainer eksternal."),
			CreatedAt:         demoTime("2024-03-18T14:45"),
			UpdatedAt:         demoTime("2024-03-25T09:20"),
		},
		{
			ID:                6,
			ReportID:          4,
			ActionDescription: "Update handbook karyawan sesuai kebijakan SDM terbaru",
			AssignedTo:        str("HRD"),
			Status:            models.FollowUpStatusCompleted,
			DueDate:           demoDate("2024-03-30"),
			CompletionDate:    demoDate("2024-03-29"),
			Notes:             str("Handbook karyawan telah diperbarui dan didistribusikan ke seluruh divisi."),
			CreatedAt:         demoTime("2024-03-05T13:10"),
			UpdatedAt:         demoTime("2024-03-29T15:20"),
		},
	}
}
