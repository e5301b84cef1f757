package mockstore

import "github.com/wartasekolah/warta/core"

// Seed data for the demo dashboard. Ids are fixed so tests and bookmarked
// dashboard links stay stable across restarts.

func seedArticles() []Article {
	return []Article{
		{
			ID:          "a1",
			Title:       "Tim Jurnalistik Raih Juara 1 Lomba Majalah Sekolah",
			Slug:        "tim-jurnalistik-raih-juara-1",
			Status:      core.StatusPublished,
			Category:    "prestasi",
			Tags:        []string{"lomba", "majalah", "juara"},
			Author:      "Sari Wulandari",
			Excerpt:     "Majalah sekolah kita dinobatkan sebagai yang terbaik se-kota.",
			Views:       1240,
			Comments:    18,
			CreatedAt:   "2024-05-02",
			UpdatedAt:   "2024-05-03",
			PublishedAt: "2024-05-03",
		},
		{
			ID:        "a2",
			Title:     "Liputan Pentas Seni Akhir Tahun",
			Slug:      "liputan-pentas-seni-akhir-tahun",
			Status:    core.StatusInReview,
			Category:  "kegiatan",
			Tags:      []string{"pensi", "seni"},
			Author:    "Budi Santoso",
			Excerpt:   "Panggung, musik, dan drama dari seluruh angkatan.",
			Views:     0,
			Comments:  0,
			CreatedAt: "2024-05-18",
			UpdatedAt: "2024-05-19",
		},
		{
			ID:        "a3",
			Title:     "Tips Menulis Berita yang Layak Muat",
			Slug:      "tips-menulis-berita-layak-muat",
			Status:    core.StatusDraft,
			Category:  "edukasi",
			Tags:      []string{"menulis", "tips"},
			Author:    "Dewi Lestari",
			Excerpt:   "Piramida terbalik, 5W1H, dan sudut pandang yang jujur.",
			CreatedAt: "2024-05-20",
			UpdatedAt: "2024-05-20",
		},
		{
			ID:        "a4",
			Title:     "Jadwal Rapat Redaksi Semester Ganjil",
			Slug:      "jadwal-rapat-redaksi-semester-ganjil",
			Status:    core.StatusScheduled,
			Category:  "kegiatan",
			Tags:      []string{"redaksi"},
			Author:    "Sari Wulandari",
			Excerpt:   "Rapat perdana digelar minggu kedua setelah masuk sekolah.",
			CreatedAt: "2024-05-21",
			UpdatedAt: "2024-05-21",
		},
		{
			ID:          "a5",
			Title:       "Wawancara dengan Alumni: Dari Mading ke Media Nasional",
			Slug:        "wawancara-alumni-mading-media-nasional",
			Status:      core.StatusArchived,
			Category:    "profil",
			Tags:        []string{"alumni", "wawancara"},
			Author:      "Budi Santoso",
			Excerpt:     "Kak Rina bercerita tentang awal kariernya di mading sekolah.",
			Views:       860,
			Comments:    7,
			CreatedAt:   "2024-03-10",
			UpdatedAt:   "2024-04-01",
			PublishedAt: "2024-03-12",
		},
	}
}

func seedUsers() []User {
	return []User{
		{ID: "u1", Name: "Sari Wulandari", Email: "sari@wartasekolah.id", Role: core.Admin, Articles: 24, Bio: "Pemimpin redaksi.", JoinedAt: "2022-08-01", Active: true},
		{ID: "u2", Name: "Budi Santoso", Email: "budi@wartasekolah.id", Role: core.Editor, Articles: 17, Bio: "Editor rubrik kegiatan.", JoinedAt: "2023-01-15", Active: true},
		{ID: "u3", Name: "Dewi Lestari", Email: "dewi@wartasekolah.id", Role: core.Writer, Articles: 9, Bio: "Penulis rubrik edukasi.", JoinedAt: "2023-09-05", Active: true},
		{ID: "u4", Name: "Andi Pratama", Email: "andi@wartasekolah.id", Role: core.Member, Articles: 0, Bio: "Anggota baru.", JoinedAt: "2024-02-20", Active: false},
	}
}

func seedCategories() []Category {
	return []Category{
		{ID: "c1", Name: "Prestasi", Slug: "prestasi", Description: "Penghargaan dan lomba.", ArticleCount: 2, Color: "#EF4444"},
		{ID: "c2", Name: "Kegiatan", Slug: "kegiatan", Description: "Acara dan agenda sekolah.", ArticleCount: 2, Color: "#3B82F6"},
		{ID: "c3", Name: "Edukasi", Slug: "edukasi", Description: "Tips dan materi belajar.", ArticleCount: 1, Color: "#22C55E"},
		{ID: "c4", Name: "Profil", Slug: "profil", Description: "Sosok siswa, guru, dan alumni.", ArticleCount: 1, Color: "#A855F7"},
		{ID: "c5", Name: "Opini", Slug: "opini", Description: "Suara warga sekolah.", ArticleCount: 0, Color: "#F59E0B"},
	}
}

func seedMedia() []Media {
	return []Media{
		{ID: "m1", Filename: "juara-majalah.jpg", OriginalName: "IMG_2041.jpg", Alt: "Tim menerima piala", Type: "image/jpeg", Size: 482_113, Width: 1600, Height: 1067, UsedIn: []string{"a1"}, UploadedAt: "2024-05-02", UploadedBy: "Sari Wulandari"},
		{ID: "m2", Filename: "pentas-seni.jpg", OriginalName: "pensi-final.jpg", Alt: "Panggung pentas seni", Type: "image/jpeg", Size: 734_920, Width: 1920, Height: 1280, UsedIn: []string{"a2"}, UploadedAt: "2024-05-18", UploadedBy: "Budi Santoso"},
		{ID: "m3", Filename: "logo-warta.png", OriginalName: "logo-v3.png", Alt: "Logo Warta Sekolah", Type: "image/png", Size: 58_204, Width: 512, Height: 512, UploadedAt: "2024-01-10", UploadedBy: "Sari Wulandari"},
	}
}

func seedSettings() Settings {
	return Settings{
		SiteName:        "Warta Sekolah",
		Tagline:         "Kabar terkini dari kami, untuk kita",
		BrandPrimary:    "#1D4ED8",
		ReviewRequired:  true,
		DefaultStatus:   core.StatusDraft,
		CommentsEnabled: true,
		AutoModeration:  false,
	}
}
