// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package rawmeta

// Sony maker note tags.
var sonyMakerNoteTags = []Tag{
	{ID: 0x0010, Label: "CameraInfo", Description: "Camera information, encrypted on newer models."},
	{ID: 0x0020, Label: "FocusInfo", Description: "Focus information."},
	{ID: 0x0102, Label: "Quality", Description: "Image quality."},
	{ID: 0x0104, Label: "FlashExposureComp", Description: "Flash exposure compensation in EV."},
	{ID: 0x0105, Label: "Teleconverter", Description: "Teleconverter model."},
	{ID: 0x0112, Label: "WhiteBalanceFineTune", Description: "White balance fine tune value."},
	{ID: 0x0114, Label: "CameraSettings", Description: "Camera settings."},
	{ID: 0x0115, Label: "WhiteBalance", Description: "White balance setting."},
	{ID: 0x0116, Label: "ExtraInfo", Description: "Extra information."},
	{ID: 0x0e00, Label: "PrintIM", Description: "Print Image Matching information."},
	{ID: 0x1000, Label: "MultiBurstMode", Description: "Multi burst mode."},
	{ID: 0x1001, Label: "MultiBurstImageWidth", Description: "Multi burst image width."},
	{ID: 0x1002, Label: "MultiBurstImageHeight", Description: "Multi burst image height."},
	{ID: 0x1003, Label: "Panorama", Description: "Panorama information."},
	{ID: 0x2001, Label: "PreviewImage", Description: "Embedded preview image."},
	{ID: 0x2002, Label: "Rating", Description: "Image rating."},
	{ID: 0x2004, Label: "Contrast", Description: "Contrast setting."},
	{ID: 0x2005, Label: "Saturation", Description: "Saturation setting."},
	{ID: 0x2006, Label: "Sharpness", Description: "Sharpness setting."},
	{ID: 0x2007, Label: "Brightness", Description: "Brightness setting."},
	{ID: 0x2008, Label: "LongExposureNoiseReduction", Description: "Long exposure noise reduction."},
	{ID: 0x2009, Label: "HighISONoiseReduction", Description: "High ISO noise reduction."},
	{ID: 0x200a, Label: "HDR", Description: "High dynamic range setting."},
	{ID: 0x200b, Label: "MultiFrameNoiseReduction", Description: "Multi frame noise reduction."},
	{ID: 0x200e, Label: "PictureEffect", Description: "Picture effect."},
	{ID: 0x200f, Label: "SoftSkinEffect", Description: "Soft skin effect."},
	{ID: 0x2011, Label: "VignettingCorrection", Description: "Vignetting correction."},
	{ID: 0x2012, Label: "LateralChromaticAberration", Description: "Lateral chromatic aberration correction."},
	{ID: 0x2013, Label: "DistortionCorrectionSetting", Description: "Distortion correction setting."},
	{ID: 0x2014, Label: "WBShiftAB_GM", Description: "White balance shift amber/blue and green/magenta."},
	{ID: 0x2016, Label: "AutoPortraitFramed", Description: "Auto portrait framing."},
	{ID: 0x2017, Label: "FlashAction", Description: "Flash action."},
	{ID: 0x201a, Label: "ElectronicFrontCurtainShutter", Description: "Electronic front curtain shutter."},
	{ID: 0x201b, Label: "FocusMode", Description: "Focus mode."},
	{ID: 0x201c, Label: "AFAreaModeSetting", Description: "AF area mode setting."},
	{ID: 0x201d, Label: "FlexibleSpotPosition", Description: "Flexible spot AF position."},
	{ID: 0x201e, Label: "AFPointSelected", Description: "Selected AF point."},
	{ID: 0x2020, Label: "AFPointsUsed", Description: "AF points used."},
	{ID: 0x2021, Label: "AFTracking", Description: "AF tracking."},
	{ID: 0x2022, Label: "FocalPlaneAFPointsUsed", Description: "Focal plane AF points used."},
	{ID: 0x2023, Label: "MultiFrameNREffect", Description: "Multi frame noise reduction effect."},
	{ID: 0x2026, Label: "WBShiftAB_GM_Precise", Description: "Precise white balance shift."},
	{ID: 0x2027, Label: "FocusLocation", Description: "Focus location."},
	{ID: 0x2028, Label: "VariableLowPassFilter", Description: "Variable low pass filter."},
	{ID: 0x2029, Label: "RAWFileType", Description: "RAW file type."},
	{ID: 0x202b, Label: "PrioritySetInAWB", Description: "Priority set in auto white balance."},
	{ID: 0x202c, Label: "MeteringMode2", Description: "Metering mode."},
	{ID: 0x202d, Label: "ExposureStandardAdjustment", Description: "Exposure standard adjustment."},
	{ID: 0x202e, Label: "Quality2", Description: "Image quality."},
	{ID: 0x202f, Label: "PixelShiftInfo", Description: "Pixel shift information."},
	{ID: 0x2031, Label: "SerialNumber", Description: "Camera serial number."},
	{ID: 0x3000, Label: "ShotInfo", Description: "Shot information."},
	{ID: 0x9050, Label: "Tag9050", Description: "Encrypted shot data."},
	{ID: 0x9400, Label: "Tag9400", Description: "Encrypted shot data."},
	{ID: 0x9402, Label: "Tag9402", Description: "Encrypted focus data."},
	{ID: 0x9403, Label: "Tag9403", Description: "Encrypted temperature data."},
	{ID: 0x9406, Label: "Tag9406", Description: "Encrypted battery data."},
	{ID: 0x940c, Label: "Tag940c", Description: "Encrypted lens mount data."},
	{ID: 0x940e, Label: "AFInfo", Description: "Encrypted AF information."},
	{ID: 0x9416, Label: "Tag9416", Description: "Encrypted exposure data."},
	{ID: 0xb000, Label: "FileFormat", Description: "File format version."},
	{ID: 0xb001, Label: "SonyModelID", Description: "Sony camera model id."},
	{ID: 0xb020, Label: "CreativeStyle", Description: "Creative style."},
	{ID: 0xb021, Label: "ColorTemperature", Description: "Color temperature in Kelvin."},
	{ID: 0xb022, Label: "ColorCompensationFilter", Description: "Color compensation filter."},
	{ID: 0xb023, Label: "SceneMode", Description: "Scene mode."},
	{ID: 0xb024, Label: "ZoneMatching", Description: "Zone matching."},
	{ID: 0xb025, Label: "DynamicRangeOptimizer", Description: "Dynamic range optimizer."},
	{ID: 0xb026, Label: "ImageStabilization", Description: "Image stabilization."},
	{ID: 0xb027, Label: "LensType", Description: "Lens type."},
	{ID: 0xb028, Label: "MinoltaMakerNote", Description: "Minolta maker note."},
	{ID: 0xb029, Label: "ColorMode", Description: "Color mode."},
	{ID: 0xb02a, Label: "LensSpec", Description: "Lens specification."},
	{ID: 0xb02b, Label: "FullImageSize", Description: "Full image size."},
	{ID: 0xb02c, Label: "PreviewImageSize", Description: "Preview image size."},
	{ID: 0xb040, Label: "Macro", Description: "Macro mode."},
	{ID: 0xb041, Label: "ExposureMode", Description: "Exposure mode."},
	{ID: 0xb042, Label: "FocusMode2", Description: "Focus mode."},
	{ID: 0xb043, Label: "AFAreaMode", Description: "AF area mode."},
	{ID: 0xb044, Label: "AFIlluminator", Description: "AF illuminator."},
	{ID: 0xb047, Label: "JPEGQuality", Description: "JPEG quality."},
	{ID: 0xb048, Label: "FlashLevel", Description: "Flash level."},
	{ID: 0xb049, Label: "ReleaseMode", Description: "Release mode."},
	{ID: 0xb04a, Label: "SequenceNumber", Description: "Sequence number in a burst."},
	{ID: 0xb04b, Label: "Anti-Blur", Description: "Anti-blur setting."},
	{ID: 0xb04e, Label: "FocusMode3", Description: "Focus mode."},
	{ID: 0xb04f, Label: "DynamicRangeOptimizer2", Description: "Dynamic range optimizer."},
	{ID: 0xb050, Label: "HighISONoiseReduction2", Description: "High ISO noise reduction."},
	{ID: 0xb052, Label: "IntelligentAuto", Description: "Intelligent auto."},
	{ID: 0xb054, Label: "WhiteBalance2", Description: "White balance."},
}
