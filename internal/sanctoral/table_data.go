package sanctoral

// defaultSaints is the built-in sanctoral calendar of the Vietnamese
// Bishops' Conference ordo, keyed by nominal month-day. cmd/import can
// replace individual entries from a JSON file loaded into SQLite.
var defaultSaints = []FixedSaint{
	{1, 2, "Thánh Basiliô Cả và Thánh Grêgôriô Nazianzênô", RankNho, ColorWhite},
	{1, 17, "Thánh Antôn, viện phụ", RankNho, ColorWhite},
	{1, 21, "Thánh Anê, trinh nữ tử đạo", RankNho, ColorRed},
	{1, 24, "Thánh Phanxicô Salêsiô", RankNho, ColorWhite},
	{1, 25, "Thánh Phaolô Tông Đồ trở lại", RankKinh, ColorWhite},
	{1, 26, "Thánh Timôthêô và Thánh Titô", RankNho, ColorWhite},
	{1, 28, "Thánh Tôma Aquinô", RankNho, ColorWhite},
	{1, 31, "Thánh Gioan Boscô", RankNho, ColorWhite},
	{2, 2, "Dâng Chúa Giêsu Trong Đền Thánh", RankKinh, ColorWhite},
	{2, 5, "Thánh Agata, trinh nữ tử đạo", RankNho, ColorRed},
	{2, 6, "Thánh Phaolô Miki và các bạn tử đạo", RankNho, ColorRed},
	{2, 11, "Đức Mẹ Lộ Đức", RankNhoKB, ColorWhite},
	{2, 14, "Thánh Cyrillô và Thánh Mêtôđiô", RankNho, ColorWhite},
	{2, 22, "Lập Tông Tòa Thánh Phêrô", RankKinh, ColorWhite},
	{3, 7, "Thánh Perpetua và Thánh Fêlicita", RankNho, ColorRed},
	{3, 19, "Thánh Giuse, Bạn Trăm Năm Đức Maria", RankTrong, ColorWhite},
	{3, 25, "Lễ Truyền Tin", RankTrong, ColorWhite},
	{4, 25, "Thánh Máccô, tác giả sách Tin Mừng", RankKinh, ColorRed},
	{4, 29, "Thánh Catarina Siêna", RankNho, ColorWhite},
	{5, 1, "Thánh Giuse Thợ", RankNhoKB, ColorWhite},
	{5, 3, "Thánh Philipphê và Thánh Giacôbê", RankKinh, ColorRed},
	{5, 13, "Đức Mẹ Fatima", RankNhoKB, ColorWhite},
	{5, 14, "Thánh Mátthia Tông Đồ", RankKinh, ColorRed},
	{5, 31, "Đức Mẹ Thăm Viếng", RankKinh, ColorWhite},
	{6, 1, "Thánh Justinô, tử đạo", RankNho, ColorRed},
	{6, 3, "Thánh Carôlô Lwanga và các bạn tử đạo", RankNho, ColorRed},
	{6, 5, "Thánh Bônifatiô", RankNho, ColorRed},
	{6, 11, "Thánh Barnaba Tông Đồ", RankNho, ColorRed},
	{6, 13, "Thánh Antôn Pađua", RankNho, ColorWhite},
	{6, 21, "Thánh Luy Gonzaga", RankNho, ColorWhite},
	{6, 24, "Sinh Nhật Thánh Gioan Tẩy Giả", RankTrong, ColorWhite},
	{6, 28, "Thánh Irênê", RankNho, ColorRed},
	{6, 29, "Thánh Phêrô và Thánh Phaolô Tông Đồ", RankTrong, ColorRed},
	{7, 3, "Thánh Tôma Tông Đồ", RankKinh, ColorRed},
	{7, 11, "Thánh Bênêđictô, viện phụ", RankNho, ColorWhite},
	{7, 22, "Thánh Maria Mađalêna", RankKinh, ColorWhite},
	{7, 25, "Thánh Giacôbê Tông Đồ", RankKinh, ColorRed},
	{7, 26, "Thánh Gioakim và Thánh Anna", RankNho, ColorWhite},
	{7, 29, "Thánh Mácta, Maria và Lazarô", RankNho, ColorWhite},
	{7, 31, "Thánh Ignatiô Loyola", RankNho, ColorWhite},
	{8, 1, "Thánh Anphongsô Maria Liguori", RankNho, ColorWhite},
	{8, 4, "Thánh Gioan Maria Vianney", RankNho, ColorWhite},
	{8, 6, "Chúa Hiển Dung", RankKinh, ColorWhite},
	{8, 8, "Thánh Đa Minh", RankNho, ColorWhite},
	{8, 10, "Thánh Laurensô, phó tế tử đạo", RankKinh, ColorRed},
	{8, 11, "Thánh Clara, trinh nữ", RankNho, ColorWhite},
	{8, 15, "Đức Mẹ Hồn Xác Lên Trời", RankTrong, ColorWhite},
	{8, 22, "Đức Maria Nữ Vương", RankNho, ColorWhite},
	{8, 24, "Thánh Batôlômêô Tông Đồ", RankKinh, ColorRed},
	{8, 27, "Thánh Mônica", RankNho, ColorWhite},
	{8, 28, "Thánh Augustinô", RankNho, ColorWhite},
	{8, 29, "Thánh Gioan Tẩy Giả bị trảm quyết", RankNho, ColorRed},
	{9, 3, "Thánh Grêgôriô Cả", RankNho, ColorWhite},
	{9, 8, "Sinh Nhật Đức Trinh Nữ Maria", RankKinh, ColorWhite},
	{9, 14, "Suy Tôn Thánh Giá Chúa", RankKinh, ColorRed},
	{9, 15, "Đức Mẹ Sầu Bi", RankNho, ColorWhite},
	{9, 21, "Thánh Mátthêu, tông đồ, tác giả sách Tin Mừng", RankKinh, ColorRed},
	{9, 27, "Thánh Vinh Sơn Phaolô", RankNho, ColorWhite},
	{9, 29, "Các Tổng Lãnh Thiên Thần Micae, Gabriel và Raphael", RankKinh, ColorWhite},
	{9, 30, "Thánh Giêrônimô", RankNho, ColorWhite},
	{10, 1, "Thánh Têrêsa Hài Đồng Giêsu", RankNho, ColorWhite},
	{10, 2, "Các Thiên Thần Hộ Thủ", RankNho, ColorWhite},
	{10, 4, "Thánh Phanxicô Assisi", RankNho, ColorWhite},
	{10, 7, "Đức Mẹ Mân Côi", RankNho, ColorWhite},
	{10, 15, "Thánh Têrêsa Giêsu (Avila)", RankNho, ColorWhite},
	{10, 18, "Thánh Luca, tác giả sách Tin Mừng", RankKinh, ColorRed},
	{10, 28, "Thánh Simon và Thánh Giuđa Tông Đồ", RankKinh, ColorRed},
	{11, 1, "Các Thánh Nam Nữ", RankTrong, ColorWhite},
	{11, 2, "Cầu Cho Các Tín Hữu Đã Qua Đời", RankTrong, ColorPurple},
	{11, 4, "Thánh Carôlô Borrômêô", RankNho, ColorWhite},
	{11, 9, "Cung Hiến Đền Thờ Latêranô", RankKinh, ColorWhite},
	{11, 10, "Thánh Lêô Cả", RankNho, ColorWhite},
	{11, 11, "Thánh Máctinô thành Tours", RankNho, ColorWhite},
	{11, 21, "Đức Mẹ Dâng Mình Trong Đền Thờ", RankNho, ColorWhite},
	{11, 22, "Thánh Cêcilia, trinh nữ tử đạo", RankNho, ColorRed},
	{11, 24, "Các Thánh Tử Đạo Việt Nam", RankTrong, ColorRed},
	{11, 30, "Thánh Anrê Tông Đồ", RankKinh, ColorRed},
	{12, 3, "Thánh Phanxicô Xaviê", RankNho, ColorWhite},
	{12, 7, "Thánh Ambrôsiô", RankNho, ColorWhite},
	{12, 8, "Đức Mẹ Vô Nhiễm Nguyên Tội", RankTrong, ColorWhite},
	{12, 13, "Thánh Lucia, trinh nữ tử đạo", RankNho, ColorRed},
	{12, 14, "Thánh Gioan Thánh Giá", RankNho, ColorWhite},
	{12, 26, "Thánh Stêphanô, tử đạo tiên khởi", RankKinh, ColorRed},
	{12, 27, "Thánh Gioan, tông đồ, tác giả sách Tin Mừng", RankKinh, ColorWhite},
	{12, 28, "Các Thánh Anh Hài", RankKinh, ColorRed},
}

// DefaultTable returns the built-in sanctoral table.
func DefaultTable() *Table {
	return NewTable(defaultSaints)
}
