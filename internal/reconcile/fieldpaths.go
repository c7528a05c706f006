package reconcile

// FieldPathSet is an ordered list of dotted field paths. Order encodes
// precedence: the first path that yields a defined, parseable value wins.
type FieldPathSet []string

// Alias tables for the upstream feeds. The feeds mix Indonesian and
// English field names, flat and nested shapes (one level of rekap.*
// nesting), so every lookup in the engine goes through one of these sets
// instead of ad hoc per-call-site chains.
var (
	// IDFieldPaths are government/user numeric id fields, the strongest
	// identity category.
	IDFieldPaths = FieldPathSet{
		"id", "user_id", "userId", "id_user",
		"nik", "nip", "nomor_induk", "employee_id",
		"rekap.user_id", "rekap.id",
	}

	// UsernameFieldPaths are social-media account handles.
	UsernameFieldPaths = FieldPathSet{
		"username", "user_name", "akun", "account",
		"instagram", "ig_username", "tiktok_username", "social_username",
		"rekap.username",
	}

	// NameFieldPaths are display-name fields, the weakest identity
	// category.
	NameFieldPaths = FieldPathSet{
		"nama", "name", "nama_lengkap", "full_name", "fullname",
		"display_name", "rekap.nama",
	}

	// ClientIDFieldPaths identify the organizational unit a participant
	// belongs to.
	ClientIDFieldPaths = FieldPathSet{
		"client_id", "id_client", "clientId", "skpd_id", "unit_id",
		"rekap.client_id",
	}

	ClientNameFieldPaths = FieldPathSet{
		"client_name", "nama_client", "client", "skpd", "unit",
		"instansi", "rekap.client_name",
	}

	DivisionFieldPaths = FieldPathSet{
		"divisi", "division", "bidang", "bagian", "departemen", "department",
	}

	// LikeFieldPaths carry like totals in the likes feed.
	LikeFieldPaths = FieldPathSet{
		"jumlah_like", "total_like", "total_likes", "like_count",
		"likes", "like",
		"rekap.total_like", "rekap.jumlah_like", "metrics.likes",
	}

	// CommentFieldPaths carry comment totals in the comments feed.
	CommentFieldPaths = FieldPathSet{
		"jumlah_komentar", "total_komentar", "total_comments", "comment_count",
		"komentar", "comments", "comment",
		"rekap.total_komentar", "rekap.jumlah_komentar", "metrics.comments",
	}

	// StatusFieldPaths carry the roster's explicit activity status.
	StatusFieldPaths = FieldPathSet{
		"status", "status_pegawai", "keterangan",
		"aktif", "is_active", "active",
		"rekap.status",
	}

	// DateFieldPaths carry the activity timestamp of a record.
	DateFieldPaths = FieldPathSet{
		"activityDate", "activity_date", "tanggal", "date",
		"created_at", "createdAt", "waktu", "timestamp",
		"rekap.tanggal", "rekap.date", "rekap.created_at",
	}
)
